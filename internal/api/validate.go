package api

import (
	"fmt"

	"routenav/internal/model"
)

// Algorithm names are deliberately not validated here: unrecognized names
// reach the dispatcher and fall back to nearest neighbor.
func (s *Server) validateOptimizeRequest(req *model.OptimizeRequest) error {
	if req.Start == "" {
		return fmt.Errorf("start is required")
	}
	if req.End == "" && len(req.Stops) == 0 {
		return fmt.Errorf("end or stops is required")
	}
	if err := validateSnapshot(req.Hour, req.Day); err != nil {
		return err
	}
	if _, ok := s.Builder.Location(req.Start); !ok {
		return fmt.Errorf("unknown location: %s", req.Start)
	}
	if req.End != "" {
		if _, ok := s.Builder.Location(req.End); !ok {
			return fmt.Errorf("unknown location: %s", req.End)
		}
	}
	seen := map[string]bool{}
	for _, stop := range req.Stops {
		if _, ok := s.Builder.Location(stop); !ok {
			return fmt.Errorf("unknown location: %s", stop)
		}
		if seen[stop] {
			return fmt.Errorf("duplicate stop: %s", stop)
		}
		seen[stop] = true
	}
	return nil
}

func validateSnapshot(hour, day *int) error {
	if hour != nil && (*hour < 0 || *hour > 23) {
		return fmt.Errorf("hour must be in [0,23]")
	}
	if day != nil && (*day < 0 || *day > 6) {
		return fmt.Errorf("day must be in [0,6]")
	}
	return nil
}

func validateDeliveryIn(in *model.DeliveryIn) error {
	if in.Start == "" {
		return fmt.Errorf("start is required")
	}
	if len(in.Stops) == 0 {
		return fmt.Errorf("stops is required")
	}
	return nil
}

func validStatus(status string) bool {
	switch status {
	case model.DeliveryPending, model.DeliveryInProgress, model.DeliveryCompleted:
		return true
	}
	return false
}
