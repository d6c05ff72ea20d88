package static

// simulatorBound is a development-environment escape hatch, not real
// geography: coordinates from the iOS simulator's default San Francisco
// location route to a fixed test district.
var simulatorBound = Bound{
	District: "test_district",
	North:    37.8, South: 37.7,
	East: -122.3, West: -122.5,
}

// Districts returns the default district table. Order is priority: smaller
// or more specific boxes come before broader ones they nest inside
// (bengaluru_urban before bengaluru_rural).
func Districts() []Bound {
	return []Bound{
		{District: "bengaluru_urban", North: 13.20, South: 12.70, East: 77.90, West: 77.30},
		{District: "bengaluru_rural", North: 13.60, South: 12.90, East: 78.00, West: 77.20},
		{District: "ramanagara", North: 13.00, South: 12.40, East: 77.50, West: 77.00},
		{District: "mandya", North: 13.00, South: 12.30, East: 77.30, West: 76.60},
		{District: "mysuru", North: 12.60, South: 11.90, East: 77.00, West: 76.20},
		{District: "kodagu", North: 12.70, South: 12.00, East: 76.10, West: 75.50},
		{District: "hassan", North: 13.30, South: 12.50, East: 76.60, West: 75.80},
		{District: "tumakuru", North: 14.00, South: 13.00, East: 77.50, West: 76.70},
		{District: "kolar", North: 13.40, South: 12.90, East: 78.60, West: 77.90},
		{District: "chikkaballapura", North: 13.90, South: 13.30, East: 78.20, West: 77.40},
		{District: "chikkamagaluru", North: 13.80, South: 13.00, East: 76.30, West: 75.20},
		{District: "dakshina_kannada", North: 13.20, South: 12.50, East: 75.30, West: 74.60},
		{District: "udupi", North: 13.90, South: 13.20, East: 75.20, West: 74.50},
		{District: "shivamogga", North: 14.30, South: 13.50, East: 75.80, West: 74.80},
		{District: "davanagere", North: 14.70, South: 14.00, East: 76.30, West: 75.60},
		{District: "ballari", North: 15.50, South: 14.70, East: 77.20, West: 76.20},
		{District: "dharwad", North: 15.80, South: 15.20, East: 75.50, West: 74.80},
		{District: "belagavi", North: 16.20, South: 15.30, East: 75.20, West: 74.20},
		{District: "vijayapura", North: 17.20, South: 16.40, East: 76.30, West: 75.20},
		{District: "kalaburagi", North: 17.60, South: 16.80, East: 77.50, West: 76.20},
	}
}

// Regions returns the broad regional fallbacks consulted when no district
// box matches. Order is priority.
func Regions() []Bound {
	return []Bound{
		{District: "karnataka_general", North: 18.50, South: 11.50, East: 78.70, West: 74.00},
		{District: "south_india_general", North: 20.00, South: 8.00, East: 85.00, West: 72.50},
		{District: "north_india_general", North: 37.00, South: 20.00, East: 89.00, West: 68.00},
		{District: "east_india_general", North: 29.50, South: 20.00, East: 97.50, West: 85.00},
	}
}
