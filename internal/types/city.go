package types

// City is one of the fixed locations the service scores
type City struct {
	Name        string `json:"name" example:"Delhi"`
	Coordinates Coords `json:"coordinates"`
}

// Cities is the fixed, ordered set of cities scored on every request.
// Iteration order is the order of the response array.
var Cities = []City{
	{Name: "Delhi", Coordinates: NewCoords(28.6139, 77.2090)},
	{Name: "Mumbai", Coordinates: NewCoords(19.0760, 72.8777)},
	{Name: "Chennai", Coordinates: NewCoords(13.0827, 80.2707)},
	{Name: "Kolkata", Coordinates: NewCoords(22.5726, 88.3639)},
	{Name: "Bangalore", Coordinates: NewCoords(12.9716, 77.5946)},
	{Name: "Hyderabad", Coordinates: NewCoords(17.3850, 78.4867)},
	{Name: "Jaipur", Coordinates: NewCoords(26.9124, 75.7873)},
	{Name: "Ahmedabad", Coordinates: NewCoords(23.0225, 72.5714)},
}
