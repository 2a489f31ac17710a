package service

// TrackingNumberPrefix starts every public tracking number.
const TrackingNumberPrefix = "BOX-"

// TrackingNumberGenerator supplies tracking numbers of the form BOX-<suffix>.
// Uniqueness is enforced by storage; the generator only needs to make collisions improbable.
type TrackingNumberGenerator interface {
	Generate() string
}
