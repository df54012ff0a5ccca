package bootstrap

import (
	"context"
	"sync"

	"focuscycle/internal/core/timekeeper"
	"focuscycle/internal/notify"
)

type chimer interface {
	timekeeper.Notifier
	Configure(config notify.ChimeConfig) error
}

// soundNotifier plays the chime according to the settings current at each
// completion. The speaker is opened on the first enabled chime; volume and
// sound file edits are applied before the next one plays.
type soundNotifier struct {
	env  *Env
	open func() (chimer, error)

	mu       sync.Mutex
	chime    chimer
	applied  notify.ChimeConfig
	openFail bool
}

func newSoundNotifier(env *Env, open func() (chimer, error)) *soundNotifier {
	return &soundNotifier{env: env, open: open}
}

func openSpeakerChime() (chimer, error) {
	chime, err := notify.NewChime(notify.ChimeConfig{})
	if err != nil {
		return nil, err
	}
	return chime, nil
}

// SessionComplete implements timekeeper.Notifier.
func (sound *soundNotifier) SessionComplete(ctx context.Context, completion timekeeper.Completion) error {
	settings := sound.env.Settings()
	if !settings.SoundEnabled {
		return nil
	}

	chime, err := sound.chimeFor(settings.ChimeConfig())
	if err != nil || chime == nil {
		return err
	}
	return chime.SessionComplete(ctx, completion)
}

// chimeFor returns nil without an error once opening the speaker has failed;
// the failure is reported on the first attempt only.
func (sound *soundNotifier) chimeFor(config notify.ChimeConfig) (chimer, error) {
	sound.mu.Lock()
	defer sound.mu.Unlock()

	if sound.openFail {
		return nil, nil
	}
	if sound.chime == nil {
		chime, err := sound.open()
		if err != nil {
			sound.openFail = true
			return nil, err
		}
		sound.chime = chime
		sound.applied = notify.ChimeConfig{}
	}
	if config != sound.applied {
		sound.applied = config
		if err := sound.chime.Configure(config); err != nil {
			sound.env.Logger.Warn("chime sound file unusable, using tones", "path", config.SoundFile, "error", err)
		}
	}
	return sound.chime, nil
}

// Chime returns the sound notifier, or nil when --silent was given.
func (env *Env) Chime() timekeeper.Notifier {
	if env.Options.Silent {
		return nil
	}
	return newSoundNotifier(env, openSpeakerChime)
}
