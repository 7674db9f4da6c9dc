package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	cfg "github.com/automoto/motioncore/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the tunables stored on disk
type SavedSettings struct {
	Sensitivity    float64 `json:"sensitivity"`
	FireCooldownMs int64   `json:"fireCooldownMs"`
	PlayerFPS      int     `json:"playerFps"`
	DroneFPS       int     `json:"droneFps"`
	Scale          float64 `json:"scale"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings snapshots the live configuration.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Sensitivity:    cfg.Player.Sensitivity,
		FireCooldownMs: cfg.Player.FireCooldown.Milliseconds(),
		PlayerFPS:      cfg.Animation.PlayerFPS,
		DroneFPS:       cfg.Animation.DroneFPS,
		Scale:          cfg.C.Scale,
	}
}

// SaveCurrentSettings persists the live configuration.
func SaveCurrentSettings() error {
	return SaveSettings(CurrentSettings())
}

// ApplySavedSettings copies valid saved values into the global config.
// Invalid fields are skipped and reported in the returned error; the valid
// ones are still applied. Used at startup before the scene is created.
func ApplySavedSettings(saved *SavedSettings) error {
	if saved == nil {
		return nil
	}

	var bad []string
	if saved.Sensitivity > 0 {
		cfg.Player.Sensitivity = saved.Sensitivity
	} else {
		bad = append(bad, fmt.Sprintf("sensitivity %v", saved.Sensitivity))
	}
	if saved.FireCooldownMs >= 0 {
		cfg.Player.FireCooldown = time.Duration(saved.FireCooldownMs) * time.Millisecond
	} else {
		bad = append(bad, fmt.Sprintf("fire cooldown %dms", saved.FireCooldownMs))
	}
	if saved.PlayerFPS > 0 {
		cfg.Animation.PlayerFPS = saved.PlayerFPS
	} else {
		bad = append(bad, fmt.Sprintf("player fps %d", saved.PlayerFPS))
	}
	if saved.DroneFPS > 0 {
		cfg.Animation.DroneFPS = saved.DroneFPS
	} else {
		bad = append(bad, fmt.Sprintf("drone fps %d", saved.DroneFPS))
	}
	if saved.Scale > 0 {
		cfg.C.Scale = saved.Scale
	} else {
		bad = append(bad, fmt.Sprintf("scale %v", saved.Scale))
	}

	if len(bad) > 0 {
		return fmt.Errorf("saved settings: ignored %v", bad)
	}
	return nil
}
