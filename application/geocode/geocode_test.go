package geocode_test

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	appgeocode "github.com/muhammadheryan/roadside-assistance/application/geocode"
	"github.com/muhammadheryan/roadside-assistance/cmd/config"
	"github.com/muhammadheryan/roadside-assistance/constant"
	redismocks "github.com/muhammadheryan/roadside-assistance/mocks/repository/redis"
	nominatimmocks "github.com/muhammadheryan/roadside-assistance/mocks/thirdparty/nominatim"
	"github.com/muhammadheryan/roadside-assistance/model"
	redisrepo "github.com/muhammadheryan/roadside-assistance/repository/redis"
	cerr "github.com/muhammadheryan/roadside-assistance/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestGeocodeApp_Reverse(t *testing.T) {
	type fields struct {
		redisRepo *redismocks.RedisRepository
		client    *nominatimmocks.Client
	}
	type args struct {
		lat float64
		lon float64
	}

	cfg := &config.Config{Geocoding: config.GeocodingConfig{CacheTTL: time.Hour}}
	const key = "geocode:-6.20000:106.81667"

	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.ReverseGeocodeResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: cache hit",
			args: args{lat: -6.2, lon: 106.816666},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, key).Return("Jalan Sudirman", nil).Once()
			},
			want: &model.ReverseGeocodeResponse{Latitude: -6.2, Longitude: 106.816666, Address: "Jalan Sudirman"},
		},
		{
			name: "success: cache miss stores upstream address",
			args: args{lat: -6.2, lon: 106.816666},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, key).Return("", redisrepo.ErrKeyNotFound).Once()
				f.client.On("Reverse", mock.Anything, -6.2, 106.816666).Return("Jalan Sudirman", nil).Once()
				f.redisRepo.On("SetWithTTL", mock.Anything, key, "Jalan Sudirman", time.Hour).Return(nil).Once()
			},
			want: &model.ReverseGeocodeResponse{Latitude: -6.2, Longitude: 106.816666, Address: "Jalan Sudirman"},
		},
		{
			name: "success: upstream failure falls back to coordinates",
			args: args{lat: -6.2, lon: 106.816666},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, key).Return("", errors.New("redis down")).Once()
				f.client.On("Reverse", mock.Anything, -6.2, 106.816666).Return("", errors.New("timeout")).Once()
			},
			want: &model.ReverseGeocodeResponse{Latitude: -6.2, Longitude: 106.816666, Address: "-6.20000, 106.81667"},
		},
		{
			name: "success: cache write failure is ignored",
			args: args{lat: 1, lon: 2},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, "geocode:1.00000:2.00000").Return("", redisrepo.ErrKeyNotFound).Once()
				f.client.On("Reverse", mock.Anything, 1.0, 2.0).Return("Somewhere", nil).Once()
				f.redisRepo.On("SetWithTTL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
			},
			want: &model.ReverseGeocodeResponse{Latitude: 1, Longitude: 2, Address: "Somewhere"},
		},
		{
			name:    "error: latitude out of range",
			args:    args{lat: 95, lon: 0},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: latitude is NaN",
			args:    args{lat: math.NaN(), lon: 10},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: longitude is NaN",
			args:    args{lat: 10, lon: math.NaN()},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: longitude is infinite",
			args:    args{lat: 10, lon: math.Inf(1)},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				redisRepo: redismocks.NewRedisRepository(t),
				client:    nominatimmocks.NewClient(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			app := appgeocode.NewGeocodeApp(cfg, f.redisRepo, f.client)
			got, err := app.Reverse(context.Background(), tt.args.lat, tt.args.lon)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Reverse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("Reverse() error = %v, want code %s", err, constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Reverse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
