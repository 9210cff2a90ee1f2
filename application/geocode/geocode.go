package geocode

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/muhammadheryan/roadside-assistance/cmd/config"
	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
	redisrepo "github.com/muhammadheryan/roadside-assistance/repository/redis"
	"github.com/muhammadheryan/roadside-assistance/thirdparty/nominatim"
	"github.com/muhammadheryan/roadside-assistance/utils/errors"
	"github.com/muhammadheryan/roadside-assistance/utils/logger"
	"go.uber.org/zap"
)

type GeocodeApp interface {
	Reverse(ctx context.Context, lat, lon float64) (*model.ReverseGeocodeResponse, error)
}

type geocodeAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
	client    nominatim.Client
}

func NewGeocodeApp(config *config.Config, redisRepo redisrepo.Repository, client nominatim.Client) GeocodeApp {
	return &geocodeAppImpl{config: config, redisRepo: redisRepo, client: client}
}

// validCoordinates is false for NaN as well as for out-of-range values.
func validCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("geocode:%.5f:%.5f", lat, lon)
}

// Reverse never fails on upstream errors: it falls back to the coordinates
// formatted to 5 decimals. Fallback addresses are not cached.
func (s *geocodeAppImpl) Reverse(ctx context.Context, lat, lon float64) (*model.ReverseGeocodeResponse, error) {
	if !validCoordinates(lat, lon) {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Coordinates out of range")
	}

	res := &model.ReverseGeocodeResponse{Latitude: lat, Longitude: lon}
	key := cacheKey(lat, lon)

	cached, err := s.redisRepo.Get(ctx, key)
	switch {
	case err == nil:
		res.Address = cached
		return res, nil
	case !stderrors.Is(err, redisrepo.ErrKeyNotFound):
		logger.Warn("[ReverseGeocode] err redisRepo.Get", zap.String("error", err.Error()))
	}

	address, err := s.client.Reverse(ctx, lat, lon)
	if err != nil {
		logger.Warn("[ReverseGeocode] err client.Reverse, using coordinates", zap.String("error", err.Error()))
		res.Address = fmt.Sprintf("%.5f, %.5f", lat, lon)
		return res, nil
	}

	if err := s.redisRepo.SetWithTTL(ctx, key, address, s.config.Geocoding.CacheTTL); err != nil {
		logger.Warn("[ReverseGeocode] err redisRepo.SetWithTTL", zap.String("error", err.Error()))
	}

	res.Address = address
	return res, nil
}
