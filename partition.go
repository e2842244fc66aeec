package globe

import "github.com/gogpu/globe/geo"

// DefaultRootRows is the number of latitude rows in the root tile
// partition. With 5 rows the sphere splits into 5×10 = 50 root tiles of
// 36°×36° each.
const DefaultRootRows = 5

// buildRootTiles constructs the root partition: rows × (rows*2) tiles
// in row-major order, south to north, west to east. Adjacent bounds are
// computed from the same expressions, so shared edges match
// bit-for-bit and the partition tiles the sphere with no gaps or
// overlaps.
//
// Construction order carries no meaning beyond deterministic indexing.
func buildRootTiles(owner *SurfaceRenderer, rows int, factory TileFactory) []Tile {
	cols := rows * 2
	tileSize := 180 / float64(rows)

	tiles := make([]Tile, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sector := geo.Sector{
				South: float64(i)*tileSize - 90,
				North: float64(i+1)*tileSize - 90,
				West:  float64(j)*tileSize - 180,
				East:  float64(j+1)*tileSize - 180,
			}
			tiles = append(tiles, factory(sector, 0, owner))
		}
	}
	return tiles
}
