package ports

import (
	"context"

	"semdiff/domain/scale"
)

// ValueGenerator produces the rating of one material on one property
type ValueGenerator interface {
	// Mode names the strategy; interactive modes go through range confirmation
	Mode() scale.Mode

	// Generate returns the average and standard deviation for the pair
	Generate(ctx context.Context, property string, material scale.Material, r scale.Range) (scale.Rating, error)
}
