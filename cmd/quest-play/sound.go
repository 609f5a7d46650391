package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/codequest/quest-engine/events"
)

const sampleRate = beep.SampleRate(48000)

// cue describes one audio feedback tone
type cue struct {
	freq     float64
	duration time.Duration
}

var cues = map[events.Type]cue{
	events.EventDamage:               {freq: 140, duration: 150 * time.Millisecond},
	events.EventCollectibleCollected: {freq: 660, duration: 90 * time.Millisecond},
	events.EventSequenceComplete:     {freq: 880, duration: 300 * time.Millisecond},
	events.EventSequenceViolated:     {freq: 180, duration: 200 * time.Millisecond},
	events.EventGateUnlocked:         {freq: 520, duration: 120 * time.Millisecond},
	events.EventGateLocked:           {freq: 110, duration: 120 * time.Millisecond},
	events.EventLayerCompleted:       {freq: 784, duration: 350 * time.Millisecond},
	events.EventCRUDComplete:         {freq: 784, duration: 350 * time.Millisecond},
	events.EventPlayerDied:           {freq: 90, duration: 500 * time.Millisecond},
}

// startSound wires short tones to gameplay events. The returned stop
// function cancels the subscriptions and silences the mixer.
func startSound(bus *events.Bus) (func(), error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}

	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	var cancels []func()
	for t, c := range cues {
		c := c
		cancels = append(cancels, bus.Subscribe(t, func(events.Event) {
			playTone(mixer, c)
		}))
	}

	stop := func() {
		for _, cancel := range cancels {
			cancel()
		}
		speaker.Lock()
		mixer.Clear()
		speaker.Unlock()
	}
	return stop, nil
}

func playTone(mixer *beep.Mixer, c cue) {
	tone, err := generators.SineTone(sampleRate, c.freq)
	if err != nil {
		return
	}
	n := sampleRate.N(c.duration)
	speaker.Lock()
	mixer.Add(beep.Take(n, &fadeOut{streamer: tone, total: n}))
	speaker.Unlock()
}

// fadeOut applies a linear release envelope so clipped tones don't click
type fadeOut struct {
	streamer beep.Streamer
	total    int
	pos      int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 0.3 * (1 - float64(f.pos)/float64(f.total))
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++

		// Short attack ramp to avoid the onset click
		attack := math.Min(float64(f.pos)/float64(sampleRate.N(5*time.Millisecond)), 1)
		samples[i][0] *= attack
		samples[i][1] *= attack
	}
	return n, ok
}

func (f *fadeOut) Err() error {
	return f.streamer.Err()
}
