package viewport

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/clock"
)

type Config struct {
	DefaultRegion valueobject.MapRegion
	// OverrideTTL clears an explicit region once it is older than the TTL and
	// a new location arrives. Zero keeps it until released.
	OverrideTTL time.Duration
}

type RegionHandler func(valueobject.MapRegion)

// Controller holds the map region shown to the user. Location updates
// recenter it unless an explicit region is in effect.
type Controller struct {
	cfg    Config
	clock  clock.Clock
	logger *zap.Logger

	mu         sync.RWMutex
	region     valueobject.MapRegion
	overridden bool
	overrideAt time.Time
	observers  []RegionHandler
}

func NewController(cfg Config, clk clock.Clock, logger *zap.Logger) (*Controller, error) {
	if err := cfg.DefaultRegion.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:    cfg,
		clock:  clk,
		logger: logger.With(zap.String("component", "viewport")),
		region: cfg.DefaultRegion,
	}, nil
}

func (c *Controller) CurrentRegion() valueobject.MapRegion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.region
}

func (c *Controller) IsOverridden() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.overridden
}

func (c *Controller) DefaultSpan() valueobject.Span {
	return c.cfg.DefaultRegion.Span
}

// OnRegionChanged registers fn to be called whenever the region changes.
func (c *Controller) OnRegionChanged(fn RegionHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// OnLocationChanged recenters on coord with the default span. It does
// nothing for an invalid coordinate or while an override is active.
func (c *Controller) OnLocationChanged(coord valueobject.Coordinate) {
	if !coord.IsValid() {
		c.logger.Debug("ignoring invalid location",
			zap.Float64("latitude", coord.Latitude),
			zap.Float64("longitude", coord.Longitude),
		)
		return
	}

	c.mu.Lock()
	if c.overridden {
		if c.cfg.OverrideTTL <= 0 || c.clock.Now().Sub(c.overrideAt) < c.cfg.OverrideTTL {
			c.mu.Unlock()
			return
		}
		c.overridden = false
		c.logger.Debug("explicit region expired")
	}
	region := valueobject.MapRegion{Center: coord, Span: c.cfg.DefaultRegion.Span}
	c.set(region)
}

// SetExplicitRegion shows region and suspends automatic recentring.
func (c *Controller) SetExplicitRegion(region valueobject.MapRegion) error {
	if err := region.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.overridden = true
	c.overrideAt = c.clock.Now()
	c.set(region)
	return nil
}

// ReleaseOverride resumes automatic recentring. The region itself stays
// until the next location update.
func (c *Controller) ReleaseOverride() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overridden = false
}

// set stores region and notifies observers if it changed. It must be called
// with c.mu held and releases it.
func (c *Controller) set(region valueobject.MapRegion) {
	if c.region == region {
		c.mu.Unlock()
		return
	}
	c.region = region
	observers := append([]RegionHandler(nil), c.observers...)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(region)
	}
}
