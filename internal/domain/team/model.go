package team

import "fmt"

// Team is a national side as listed in a tournament's group draw.
type Team struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (t Team) Validate() error {
	if t.Code == "" {
		return fmt.Errorf("team code is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
