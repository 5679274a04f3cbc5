// README: Closed set of routing intents detectable from a trip query.
package intent

// Intent is a named high-level routing preference.
type Intent string

const (
	BasicNavigation     Intent = "Basic Navigation"
	MultiStop           Intent = "Multi-Stop"
	TimeConstrained     Intent = "Time-Constrained"
	TrafficAware        Intent = "Traffic-Aware"
	ScenicRouting       Intent = "Scenic Routing"
	FuelEfficient       Intent = "Fuel-Efficient"
	AvoidingTolls       Intent = "Avoiding Tolls"
	AvoidingHighways    Intent = "Avoiding Highways"
	WeatherBased        Intent = "Weather-Based"
	EVCharging          Intent = "EV Charging"
	EmergencyRouting    Intent = "Emergency Routing"
	ParkingAvailability Intent = "Parking Availability"
	Shortest            Intent = "Shortest"
	RestStop            Intent = "Rest Stop"
	NightStay           Intent = "Night Stay"
)
