package model

// Core domain types shared by the graph builder, optimizer, and API.

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a named point on the delivery network. Immutable after load.
type Location struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Type     string  `json:"type"`
	AreaType string  `json:"area_type"`
}

// OptimizeRequest describes a routing request. Exactly one of End (single
// destination) or Stops (multi-stop tour) is expected. Hour/Day/Weather
// select the traffic snapshot; nil/empty fields default to "now" and clear.
type OptimizeRequest struct {
	Start     string   `json:"start"`
	End       string   `json:"end,omitempty"`
	Stops     []string `json:"stops,omitempty"`
	Algorithm string   `json:"algorithm,omitempty"`
	Hour      *int     `json:"hour,omitempty"`
	Day       *int     `json:"day,omitempty"`
	Weather   string   `json:"weather,omitempty"`
}

// TrafficConditions echoes the snapshot a result was computed against.
type TrafficConditions struct {
	Hour    int    `json:"hour"`
	Day     int    `json:"day"`
	Weather string `json:"weather"`
}

type OptimizeResponse struct {
	Success          bool              `json:"success"`
	Route            []string          `json:"route"`
	RouteCoords      []GeoPoint        `json:"route_coords"`
	Distance         float64           `json:"distance"`
	EstimatedMinutes float64           `json:"estimated_time_minutes"`
	Algorithm        string            `json:"algorithm"`
	NumStops         int               `json:"num_stops"`
	Traffic          TrafficConditions `json:"traffic_conditions"`
}

type TrafficRequest struct {
	Location string `json:"location"`
	Hour     *int   `json:"hour,omitempty"`
	Day      *int   `json:"day,omitempty"`
	Weather  string `json:"weather,omitempty"`
}

type TrafficResponse struct {
	Success    bool              `json:"success"`
	Location   string            `json:"location"`
	Multiplier float64           `json:"traffic_multiplier"`
	Level      string            `json:"traffic_level"`
	Conditions TrafficConditions `json:"conditions"`
}

type EstimateRequest struct {
	DistanceKm  *float64 `json:"distance_km"`
	NumStops    int      `json:"num_stops,omitempty"`
	Hour        *int     `json:"hour,omitempty"`
	Day         *int     `json:"day,omitempty"`
	PackageSize string   `json:"package_size,omitempty"`
	Weather     string   `json:"weather,omitempty"`
}

type EstimateResponse struct {
	Success        bool           `json:"success"`
	EstimatedMins  float64        `json:"estimated_time_minutes"`
	EstimatedHours float64        `json:"estimated_time_hours"`
	Parameters     map[string]any `json:"parameters"`
}

// Delivery statuses.
const (
	DeliveryPending    = "pending"
	DeliveryInProgress = "in_progress"
	DeliveryCompleted  = "completed"
)

// DeliveryIn is the create payload for a delivery record.
type DeliveryIn struct {
	Start       string   `json:"start"`
	Stops       []string `json:"stops"`
	PackageSize string   `json:"package_size,omitempty"`
	Weather     string   `json:"weather,omitempty"`
}

type Delivery struct {
	ID          string   `json:"id"`
	Start       string   `json:"start"`
	Stops       []string `json:"stops"`
	Status      string   `json:"status"`
	PackageSize string   `json:"package_size"`
	Weather     string   `json:"weather"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
	Recipient   string   `json:"recipient_name,omitempty"`
	Notes       string   `json:"delivery_notes,omitempty"`
	Signature   string   `json:"signature,omitempty"`
	Photo       string   `json:"photo,omitempty"`
	DeliveredAt string   `json:"delivered_at,omitempty"`
}

// DeliveryPatch updates mutable delivery fields; zero values are ignored.
type DeliveryPatch struct {
	Status      string   `json:"status,omitempty"`
	Stops       []string `json:"stops,omitempty"`
	PackageSize string   `json:"package_size,omitempty"`
	Weather     string   `json:"weather,omitempty"`
}

// SubmitRequest confirms a completed delivery with proof-of-delivery fields.
type SubmitRequest struct {
	RecipientName string `json:"recipient_name"`
	DeliveryNotes string `json:"delivery_notes,omitempty"`
	Signature     string `json:"signature,omitempty"`
	Photo         string `json:"photo,omitempty"`
	DeliveredAt   string `json:"delivered_at,omitempty"`
}

type Analytics struct {
	TotalDeliveries int     `json:"total_deliveries"`
	Completed       int     `json:"completed"`
	Pending         int     `json:"pending"`
	InProgress      int     `json:"in_progress"`
	CompletionRate  float64 `json:"completion_rate"`
}
