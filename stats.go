package deepexpect

// Stats holds statistical metadata about a comparison
type Stats struct {
	LeftNodes  int `json:"leftNodes"`  // count of nodes in the expected tree
	RightNodes int `json:"rightNodes"` // count of nodes in the actual tree

	LeftWeight  int `json:"leftWeight"`  // byte-ish count of the expected tree
	RightWeight int `json:"rightWeight"` // byte-ish count of the actual tree
}
