package main

import mandel "github.com/timelessnesses/mandelbrot.png"

const (
	msgHeader = "header"
	msgBand   = "band"
	msgDone   = "done"
)

// streamMsg is the JSON message sent over the websocket.
type streamMsg struct {
	Type string `json:"type"`

	// header
	Region     *mandel.Region `json:"region,omitempty"`
	Cols       int            `json:"cols,omitempty"`
	Rows       int            `json:"rows,omitempty"`
	Iterations int            `json:"iterations,omitempty"`

	// band, rows [FirstRow, EndRow)
	FirstRow int            `json:"first_row,omitempty"`
	EndRow   int            `json:"end_row,omitempty"`
	Points   []mandel.Point `json:"points,omitempty"`

	// done
	Total int `json:"total,omitempty"`
}

// rowBand is a half-open range of grid rows.
type rowBand struct {
	first, end int
}

// splitRows splits rows into bands of size bandRows.
// The last band is smaller if rows is not divisible.
func splitRows(rows, bandRows int) []rowBand {
	if bandRows <= 0 {
		panic("band size must be positive")
	}

	var bands []rowBand
	for first := 0; first < rows; first += bandRows {
		end := min(first+bandRows, rows)
		bands = append(bands, rowBand{first: first, end: end})
	}
	return bands
}
