package predict

// Estimation coefficients. Travel time assumes a 30 km/h average urban
// speed before traffic and weather adjustments; service time per stop
// depends on package size.
const (
	baseSpeedKmh = 30.0
	minMinutes   = 5.0

	rushFactor  = 1.75
	nightFactor = 0.6
)

var stopMinutes = map[string]float64{
	"small":  2,
	"medium": 5,
	"large":  10,
}

var weatherFactor = map[string]float64{
	"clear":      1.0,
	"rain":       1.3,
	"heavy_rain": 1.7,
	"fog":        1.2,
}

// DeliveryEstimator computes expected delivery duration from route distance
// and stop count.
type DeliveryEstimator struct{}

func NewDeliveryEstimator() *DeliveryEstimator { return &DeliveryEstimator{} }

func isRushHour(hour int) bool {
	switch hour {
	case 7, 8, 9, 17, 18, 19:
		return true
	}
	return false
}

func isNightHour(hour int) bool {
	return hour >= 22 || hour <= 5
}

// Estimate returns the expected delivery time in minutes. Unknown package
// sizes fall back to medium, unknown weather to clear. The result never
// drops below the five minute floor.
func (e *DeliveryEstimator) Estimate(distanceKm float64, numStops, hour, day int, packageSize, weather string) float64 {
	perStop, ok := stopMinutes[packageSize]
	if !ok {
		perStop = stopMinutes["medium"]
	}
	wf, ok := weatherFactor[weather]
	if !ok {
		wf = 1.0
	}

	traffic := 1.0
	if isRushHour(hour) && day < 5 {
		traffic = rushFactor
	} else if isNightHour(hour) {
		traffic = nightFactor
	}

	travel := (distanceKm / baseSpeedKmh) * 60 * traffic * wf
	total := travel + float64(numStops)*perStop
	if total < minMinutes {
		total = minMinutes
	}
	return total
}
