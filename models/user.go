package models

import (
	"gorm.io/gorm"
)

// User carries the profile data the read queries need: height for BMI and
// the target weights for goal projection. Deployments run with a single
// seeded user, but the ID is still passed explicitly through the services.
type User struct {
	gorm.Model
	Name              string
	HeightCm          float64
	GoalWeightKg      float64
	MilestoneWeightKg float64
}
