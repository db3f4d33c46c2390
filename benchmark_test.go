package marquee

import (
	"math/rand/v2"
	"testing"
)

func BenchmarkTick_Intro(b *testing.B) {
	s := newTestScene(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Tick(frameDT)
	}
}

func BenchmarkTick_IdleScrolling(b *testing.B) {
	s := newTestScene(b)
	finishIntro(b, s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%30 == 0 {
			s.InjectWheel(100)
		}
		if i%90 == 0 {
			s.InjectWheel(-300)
		}
		s.Tick(frameDT)
	}
}

func BenchmarkOrnamentUpdate(b *testing.B) {
	c := newOrnamentCluster(DefaultConfig().Ornaments, rand.New(rand.NewPCG(1, 1)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.update(frameDT, float64(i)*frameDT)
	}
}

func BenchmarkProjectParticles(b *testing.B) {
	s := newTestScene(b)
	s.Camera().SetViewport(1280, 720)
	f := s.Particles()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.update(float64(i) * frameDT)
		for j := 0; j < f.Len(); j++ {
			s.camera.Project(f.worldPoint(j))
		}
	}
}
