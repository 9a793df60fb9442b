package tiles

import "sync"

// DefaultTiles is the campus tile set. Dining tables and kitchen counters
// have no letter left in the alphabet, so they use punctuation.
var DefaultTiles = []Tile{
	{Kind: Empty, Char: 'E', Name: "Floor", Color: rgb(45, 45, 50), Accent: rgb(55, 55, 60), Walkable: true},
	{Kind: Grass, Char: 'G', Name: "Grass", Color: rgb(76, 175, 80), Accent: rgb(139, 195, 74), Walkable: true},
	{Kind: Water, Char: 'W', Name: "Water", Color: rgb(33, 150, 243), Accent: rgb(100, 181, 246)},
	{Kind: Wall, Char: 'B', Name: "Wall", Color: rgb(121, 85, 72), Accent: rgb(141, 110, 99)},
	{Kind: Tree, Char: 'T', Name: "Tree", Color: rgb(56, 142, 60), Accent: rgb(102, 187, 106)},
	{Kind: Pathway, Char: 'P', Name: "Pathway", Color: rgb(169, 169, 169), Accent: rgb(192, 192, 192), Walkable: true},
	{Kind: Library, Char: 'L', Name: "Library", Color: rgb(139, 69, 19), Accent: rgb(160, 82, 45), Walkable: true},
	{Kind: Cafeteria, Char: 'C', Name: "Cafeteria", Color: rgb(255, 140, 0), Accent: rgb(255, 165, 0), Walkable: true},
	{Kind: Dormitory, Char: 'D', Name: "Dormitory", Color: rgb(70, 130, 180), Accent: rgb(100, 149, 237), Walkable: true},
	{Kind: SportsField, Char: 'S', Name: "Sports Field", Color: rgb(34, 139, 34), Accent: rgb(50, 205, 50), Walkable: true},
	{Kind: ParkingLot, Char: 'R', Name: "Parking Lot", Color: rgb(105, 105, 105), Accent: rgb(128, 128, 128), Walkable: true},
	{Kind: Door, Char: 'O', Name: "Door", Color: rgb(139, 69, 19), Accent: rgb(160, 82, 45), Walkable: true, Door: &DoorTarget{Return: true}},
	{Kind: Bookshelf, Char: 'F', Name: "Bookshelf", Color: rgb(101, 67, 33), Accent: rgb(139, 90, 43)},
	{Kind: Desk, Char: 'K', Name: "Desk", Color: rgb(160, 82, 45), Accent: rgb(205, 133, 63), Walkable: true},
	{Kind: Chair, Char: 'H', Name: "Chair", Color: rgb(139, 69, 19), Accent: rgb(160, 82, 45), Walkable: true},
	{Kind: DiningTable, Char: '=', Name: "Dining Table", Color: rgb(139, 69, 19), Accent: rgb(160, 82, 45), Walkable: true},
	{Kind: KitchenCounter, Char: '#', Name: "Kitchen Counter", Color: rgb(192, 192, 192), Accent: rgb(211, 211, 211)},
	{Kind: ServingCounter, Char: 'V', Name: "Serving Counter", Color: rgb(255, 140, 0), Accent: rgb(255, 165, 0), Walkable: true},
	{Kind: Bed, Char: 'A', Name: "Bed", Color: rgb(255, 192, 203), Accent: rgb(255, 218, 185), Walkable: true},
	{Kind: Wardrobe, Char: 'U', Name: "Wardrobe", Color: rgb(101, 67, 33), Accent: rgb(160, 82, 45)},
	{Kind: Bathroom, Char: 'I', Name: "Bathroom", Color: rgb(173, 216, 230), Accent: rgb(135, 206, 235), Walkable: true},
	{Kind: ParkingSpace, Char: 'X', Name: "Parking Space", Color: rgb(128, 128, 128), Accent: rgb(169, 169, 169), Walkable: true},
	{Kind: DrivingLane, Char: 'Y', Name: "Driving Lane", Color: rgb(64, 64, 64), Accent: rgb(105, 105, 105), Walkable: true},
	{Kind: Sidewalk, Char: 'Z', Name: "Sidewalk", Color: rgb(192, 192, 192), Accent: rgb(211, 211, 211), Walkable: true},
	{Kind: LibraryDoor, Char: 'Q', Name: "Library Door", Color: rgb(139, 69, 19), Accent: rgb(160, 82, 45), Walkable: true, Door: &DoorTarget{Map: "library"}},
	{Kind: CafeteriaDoor, Char: 'J', Name: "Cafeteria Door", Color: rgb(255, 140, 0), Accent: rgb(255, 165, 0), Walkable: true, Door: &DoorTarget{Map: "cafeteria"}},
	{Kind: DormitoryDoor, Char: 'M', Name: "Dormitory Door", Color: rgb(70, 130, 180), Accent: rgb(100, 149, 237), Walkable: true, Door: &DoorTarget{Map: "dormitory"}},
	{Kind: ParkingDoor, Char: 'N', Name: "Parking Door", Color: rgb(105, 105, 105), Accent: rgb(128, 128, 128), Walkable: true, Door: &DoorTarget{Map: "parking"}},
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the shared registry built from DefaultTiles.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = NewRegistry(DefaultTiles)
	})
	return defaultReg, defaultErr
}

// MustDefault is Default for callers that can't recover from a broken
// built-in table.
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}
