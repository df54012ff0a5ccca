package notify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"

	"focuscycle/internal/core/timekeeper"
)

// ErrAudioUnavailable indicates the audio device could not be opened.
var ErrAudioUnavailable = errors.New("audio unavailable")

// DefaultSampleRate is used when ChimeConfig leaves SampleRate unset.
const DefaultSampleRate = beep.SampleRate(44100)

const (
	lowTone         = 660.0
	highTone        = 880.0
	firstNoteLen    = 150 * time.Millisecond
	noteGapLen      = 50 * time.Millisecond
	secondNoteLen   = 250 * time.Millisecond
	resampleQuality = 4
)

// Player plays a stream without blocking.
type Player interface {
	Play(streamer beep.Streamer)
}

type speakerPlayer struct{}

func (speakerPlayer) Play(streamer beep.Streamer) {
	speaker.Play(streamer)
}

// ChimeConfig configures the chime.
type ChimeConfig struct {
	// SoundFile is an optional Ogg Vorbis file played instead of the built-in tones.
	SoundFile  string
	SampleRate beep.SampleRate
	// Volume is a base-2 gain; 0 leaves the signal untouched.
	Volume float64
}

// Chime plays a short two-note signal on every zero-crossing: rising when focus
// resumes, falling when a break begins.
type Chime struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	volume     float64
	player     Player
	buffer     *beep.Buffer
}

// NewChime opens the speaker and prepares the chime.
func NewChime(config ChimeConfig) (*Chime, error) {
	if config.SampleRate <= 0 {
		config.SampleRate = DefaultSampleRate
	}
	if err := speaker.Init(config.SampleRate, config.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	chime := newChime(config.SampleRate, config.Volume, speakerPlayer{})
	if config.SoundFile != "" {
		if err := chime.Load(config.SoundFile); err != nil {
			return nil, err
		}
	}
	return chime, nil
}

func newChime(sampleRate beep.SampleRate, volume float64, player Player) *Chime {
	return &Chime{
		sampleRate: sampleRate,
		volume:     volume,
		player:     player,
	}
}

// Load decodes an Ogg Vorbis file and uses it for every later chime.
func (chime *Chime) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open sound file: %w", err)
	}

	streamer, format, err := vorbis.Decode(file)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("decode sound file: %w", err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != chime.sampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, chime.sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  chime.sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buffer.Append(source)

	chime.mu.Lock()
	chime.buffer = buffer
	chime.mu.Unlock()
	return nil
}

// Configure applies a new volume and sound file. An empty SoundFile switches
// back to the built-in tones, as does a file that fails to load.
func (chime *Chime) Configure(config ChimeConfig) error {
	chime.mu.Lock()
	chime.volume = config.Volume
	if config.SoundFile == "" {
		chime.buffer = nil
	}
	chime.mu.Unlock()

	if config.SoundFile == "" {
		return nil
	}
	if err := chime.Load(config.SoundFile); err != nil {
		chime.mu.Lock()
		chime.buffer = nil
		chime.mu.Unlock()
		return err
	}
	return nil
}

// SessionComplete implements timekeeper.Notifier.
func (chime *Chime) SessionComplete(_ context.Context, completion timekeeper.Completion) error {
	streamer, err := chime.streamer(completion.Next)
	if err != nil {
		return err
	}
	chime.player.Play(streamer)
	return nil
}

func (chime *Chime) streamer(next timekeeper.Kind) (beep.Streamer, error) {
	chime.mu.Lock()
	buffer := chime.buffer
	volume := chime.volume
	chime.mu.Unlock()

	var signal beep.Streamer
	if buffer != nil {
		signal = buffer.Streamer(0, buffer.Len())
	} else {
		first, second := lowTone, highTone
		if next == timekeeper.KindOnBreak {
			first, second = highTone, lowTone
		}
		tones, err := chime.tones(first, second)
		if err != nil {
			return nil, err
		}
		signal = tones
	}

	return &effects.Volume{
		Streamer: signal,
		Base:     2,
		Volume:   volume,
	}, nil
}

func (chime *Chime) tones(first, second float64) (beep.Streamer, error) {
	firstTone, err := generators.SineTone(chime.sampleRate, first)
	if err != nil {
		return nil, fmt.Errorf("generate tone: %w", err)
	}
	secondTone, err := generators.SineTone(chime.sampleRate, second)
	if err != nil {
		return nil, fmt.Errorf("generate tone: %w", err)
	}
	return beep.Seq(
		beep.Take(chime.sampleRate.N(firstNoteLen), firstTone),
		beep.Silence(chime.sampleRate.N(noteGapLen)),
		beep.Take(chime.sampleRate.N(secondNoteLen), secondTone),
	), nil
}
