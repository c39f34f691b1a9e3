package sim_test

import (
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/wave"
)

func mustParams(a, lambda, h float64) wave.Parameters {
	p, err := wave.NewParameters(a, lambda, h)
	Expect(err).NotTo(HaveOccurred())
	return p
}

func smallConfig() sim.Config {
	return sim.Config{DomainLength: 100, Points: 101}
}

var _ = Describe("Loop", func() {
	var (
		loop *sim.Loop
		p    wave.Parameters
	)

	BeforeEach(func() {
		p = mustParams(1.0, 10.0, 1.0)
		var err error
		loop, err = sim.New(smallConfig(), p)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("starts idle at t=0", func() {
			Expect(loop.State()).To(Equal(sim.Idle))
			Expect(loop.Time()).To(BeZero())
			Expect(loop.Parameters()).To(Equal(p))
		})

		It("builds the configured domain", func() {
			xs := loop.Domain()
			Expect(xs).To(HaveLen(101))
			Expect(xs[0]).To(BeZero())
			Expect(xs[100]).To(BeNumerically("~", 100, 1e-12))
		})

		It("rejects unusable domains", func() {
			_, err := sim.New(sim.Config{DomainLength: 100, Points: 1}, p)
			Expect(err).To(MatchError(sim.ErrInvalidConfig))

			_, err = sim.New(sim.Config{DomainLength: -1, Points: 10}, p)
			Expect(err).To(MatchError(sim.ErrInvalidConfig))

			_, err = sim.New(sim.Config{DomainLength: 10, Points: 10, WrapAfter: -1}, p)
			Expect(err).To(MatchError(sim.ErrInvalidConfig))
		})

		It("rejects invalid initial parameters", func() {
			_, err := sim.New(smallConfig(), wave.Parameters{Amplitude: 1, Wavelength: 0, Depth: 1})
			Expect(err).To(MatchError(wave.ErrInvalidParameter))
			Expect(err).To(MatchError(sim.ErrRejected))
		})

		It("uses a 1 km domain with 1000 points by default", func() {
			cfg := sim.DefaultConfig()
			Expect(cfg.DomainLength).To(Equal(1000.0))
			Expect(cfg.Points).To(Equal(1000))
		})
	})

	Describe("state machine", func() {
		It("follows Idle → Running → Paused → Running → Idle", func() {
			loop.Start()
			Expect(loop.State()).To(Equal(sim.Running))
			loop.Pause()
			Expect(loop.State()).To(Equal(sim.Paused))
			loop.Start()
			Expect(loop.State()).To(Equal(sim.Running))
			loop.Reset()
			Expect(loop.State()).To(Equal(sim.Idle))
		})

		It("ignores Pause while idle", func() {
			loop.Pause()
			Expect(loop.State()).To(Equal(sim.Idle))
		})

		It("names its states", func() {
			Expect(sim.Idle.String()).To(Equal("idle"))
			Expect(sim.Running.String()).To(Equal("running"))
			Expect(sim.Paused.String()).To(Equal("paused"))
		})
	})

	Describe("Tick", func() {
		It("advances time only while running", func() {
			s := loop.Tick(0.5)
			Expect(s.Time).To(BeZero())
			Expect(loop.Time()).To(BeZero())

			loop.Start()
			s = loop.Tick(0.5)
			Expect(s.Time).To(Equal(0.5))
			s = loop.Tick(0.25)
			Expect(s.Time).To(Equal(0.75))

			loop.Pause()
			s = loop.Tick(1)
			Expect(s.Time).To(Equal(0.75))
			Expect(loop.Time()).To(Equal(0.75))
		})

		It("returns the last sample while paused", func() {
			loop.Start()
			running := loop.Tick(0.3)
			loop.Pause()
			paused := loop.Tick(0.3)
			Expect(paused).To(Equal(running))
		})

		It("hands out independently owned samples", func() {
			a := loop.Tick(0)
			a.Points[0].Eta = 42
			b := loop.Tick(0)
			Expect(b.Points[0].Eta).To(Equal(1.0))
		})

		It("produces η = A at x=0, t=0", func() {
			s := loop.Tick(0.1)
			Expect(s.Points[0].Eta).To(Equal(p.Amplitude))
		})

		It("matches the closed-form profile", func() {
			loop.Start()
			s := loop.Tick(1.2)
			k := 2 * math.Pi / p.Wavelength
			w := math.Sqrt(wave.Gravity * k * math.Tanh(k*p.Depth))
			for _, pt := range s.Points {
				Expect(pt.Eta).To(BeNumerically("~", math.Cos(k*pt.X-w*1.2), 1e-12))
			}
		})

		It("ignores non-positive time steps", func() {
			loop.Start()
			loop.Tick(1)
			loop.Tick(-0.5)
			loop.Tick(math.NaN())
			loop.Tick(math.Inf(1))
			Expect(loop.Time()).To(Equal(1.0))
		})

		It("keeps the clock bounded under huge time steps", func() {
			loop.Start()
			loop.Tick(sim.MaxTime)
			loop.Tick(math.MaxFloat64)
			s := loop.Tick(math.MaxFloat64)
			Expect(loop.Time()).To(Equal(sim.MaxTime))
			for _, pt := range s.Points {
				Expect(math.IsNaN(pt.Eta) || math.IsInf(pt.Eta, 0)).To(BeFalse())
			}
		})

		It("wraps the clock when configured", func() {
			cfg := smallConfig()
			cfg.WrapAfter = 1.0
			l, err := sim.New(cfg, p)
			Expect(err).NotTo(HaveOccurred())
			l.Start()
			l.Tick(0.75)
			s := l.Tick(0.5)
			Expect(s.Time).To(BeNumerically("~", 0.25, 1e-12))
		})
	})

	Describe("Reset", func() {
		It("reproduces a fresh loop's first tick", func() {
			loop.Start()
			for i := 0; i < 10; i++ {
				loop.Tick(0.1)
			}
			loop.Reset()
			after := loop.Tick(0.1)

			fresh, err := sim.New(smallConfig(), p)
			Expect(err).NotTo(HaveOccurred())
			Expect(after).To(Equal(fresh.Tick(0.1)))
		})

		It("reproduces a fresh running loop once restarted", func() {
			loop.Start()
			loop.Tick(3)
			loop.Reset()
			loop.Start()
			after := loop.Tick(0.1)

			fresh, _ := sim.New(smallConfig(), p)
			fresh.Start()
			Expect(after).To(Equal(fresh.Tick(0.1)))
		})
	})

	Describe("SetParameters", func() {
		It("replaces parameters and resets the clock", func() {
			loop.Start()
			loop.Tick(2)

			q := mustParams(0.5, 20, 3)
			_, err := loop.SetParameters(q)
			Expect(err).NotTo(HaveOccurred())
			Expect(loop.Parameters()).To(Equal(q))
			Expect(loop.Time()).To(BeZero())
			Expect(loop.State()).To(Equal(sim.Running))
		})

		It("keeps previous parameters on invalid wavelength", func() {
			loop.Start()
			loop.Tick(0.4)
			loop.Pause()
			before := loop.Tick(0)

			for _, bad := range []float64{0, -10} {
				_, err := loop.SetParameters(wave.Parameters{Amplitude: 1, Wavelength: bad, Depth: 1})
				Expect(err).To(MatchError(wave.ErrInvalidParameter))
				Expect(err).To(MatchError(sim.ErrRejected))
			}

			Expect(loop.Parameters()).To(Equal(p))
			Expect(loop.Time()).To(Equal(0.4))
			Expect(loop.Tick(0)).To(Equal(before))
		})

		It("refreshes the held sample while paused", func() {
			loop.Start()
			loop.Tick(0.4)
			loop.Pause()
			_, err := loop.SetParameters(mustParams(3, 10, 1))
			Expect(err).NotTo(HaveOccurred())
			s := loop.Tick(0)
			Expect(s.Time).To(BeZero())
			Expect(s.Points[0].Eta).To(Equal(3.0))
		})

		It("returns physical validity warnings without rejecting", func() {
			ws, err := loop.SetParameters(wave.Parameters{Amplitude: 5, Wavelength: 10, Depth: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(ws).NotTo(BeEmpty())
			Expect(loop.Warnings()).To(HaveLen(len(ws)))
			Expect(loop.Parameters().Amplitude).To(Equal(5.0))
		})
	})

	Describe("diagnostics", func() {
		It("reports diagnostics for a 10 m wave over 1 m of water", func() {
			Expect(loop.Wavenumber()).To(BeNumerically("~", 0.6283, 1e-4))
			Expect(loop.Regime()).To(Equal(wave.Intermediate))
			Expect(loop.AngularFrequency()).To(BeNumerically("~", 1.853, 1e-3))
			Expect(loop.PhaseVelocity()).To(BeNumerically("~", loop.AngularFrequency()/loop.Wavenumber(), 1e-12))
		})

		It("returns a consistent status", func() {
			loop.Start()
			loop.Tick(0.2)
			st := loop.Status()
			Expect(st.Time).To(Equal(0.2))
			Expect(st.State).To(Equal(sim.Running))
			Expect(st.Parameters).To(Equal(p))
			Expect(st.Diagnostics.Regime).To(Equal(wave.Intermediate))
		})
	})

	Describe("concurrent readers", func() {
		It("never observe a half-updated parameter set", func() {
			a := mustParams(1, 10, 1)
			b := mustParams(2, 20, 2)

			var wg sync.WaitGroup
			stop := make(chan struct{})
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				for {
					select {
					case <-stop:
						return
					default:
					}
					got := loop.Parameters()
					ok := got == a || got == b || got == p
					Expect(ok).To(BeTrue())
				}
			}()

			for i := 0; i < 500; i++ {
				if i%2 == 0 {
					_, _ = loop.SetParameters(a)
				} else {
					_, _ = loop.SetParameters(b)
				}
			}
			close(stop)
			wg.Wait()
		})
	})
})
