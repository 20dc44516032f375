package renderer

import "image"

// Tile is a rectangular portion of the frame rendered as one unit of
// work. Tiles never overlap, so workers write their pixels into the
// shared frame image without synchronization.
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid partitions a width x height frame into tiles of at most
// tileSize pixels per side.
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{
				ID:     tileID,
				Bounds: image.Rect(x0, y0, x1, y1),
			})
			tileID++
		}
	}

	return tiles
}
