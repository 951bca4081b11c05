package model

// Client owns vehicles and receives notifications.
type Client struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

// Vehicle is the car being serviced.
type Vehicle struct {
	ID          int64
	ClientID    int64
	Make        string
	Model       string
	PlateNumber string
}

// DisplayName joins make, model and plate for messages.
func (v Vehicle) DisplayName() string {
	name := v.Make
	if v.Model != "" {
		if name != "" {
			name += " "
		}
		name += v.Model
	}
	if v.PlateNumber != "" {
		if name != "" {
			name += " "
		}
		name += "(" + v.PlateNumber + ")"
	}
	return name
}
