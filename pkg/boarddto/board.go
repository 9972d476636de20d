package boarddto

// Board is the JSON body returned by /v1/decode.
type Board struct {
	// Placement is the canonical placement field of the decoded board.
	Placement string `json:"placement"`
	// Rows holds one string per rank, FEN letters and '.' for empty squares.
	Rows []string `json:"rows"`
	// Packed is the 4-bit-per-square form as hex.
	Packed string `json:"packed"`
}
