package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/flux2d/flux2d/internal/core/engine"
	"github.com/flux2d/flux2d/internal/core/events/bus"
	"github.com/flux2d/flux2d/internal/core/geom"
	"github.com/flux2d/flux2d/internal/core/observability/log"
	"github.com/flux2d/flux2d/internal/core/physics"
	"github.com/flux2d/flux2d/internal/core/scene"
)

func main() {
	cfg := engine.DefaultConfig()
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			panic(err)
		}
		cfg, err = engine.LoadConfigYAML(f)
		_ = f.Close()
		if err != nil {
			panic(err)
		}
	}

	logger := log.New(cfg.LogLevelValue())
	eventBus := bus.New()

	_, _ = eventBus.Subscribe(physics.EventCollisionEnter, func(e bus.Event) error {
		pe := e.Data().(physics.PairEvent)
		logger.Info("collision",
			log.String("a", pe.A.Owner().Name),
			log.String("b", pe.B.Owner().Name))
		return nil
	})

	eng := engine.New(cfg, logger, engine.NewTickerScheduler(cfg.TickRate), eventBus)
	eng.LoadScene(buildDemoScene())

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)

	eng.Start()
	<-stopCh
	eng.Stop()
}

// buildDemoScene drops two balls onto a static floor, with a trigger zone
// above it that announces anything passing through.
func buildDemoScene() *scene.Scene {
	scene.RegisterScript("zone-announcer", scene.Callbacks{
		OnTriggerEnter: func(s *scene.Script, other *scene.Collider) {
			count := 0
			if v, ok := s.Var("count", 0).(int); ok {
				count = v
			}
			s.SetVar("count", count+1)
		},
	})

	sc := scene.NewScene("demo")

	floor := scene.NewGameObject("floor")
	floor.Transform().Position = geom.V2(0, 300)
	floor.AddComponent(scene.NewBoxCollider(800, 40))
	floorBody := scene.NewRigidBody()
	floorBody.IsKinematic = true
	floor.AddComponent(floorBody)
	floor.AddComponent(scene.NewRenderable(scene.RenderRect, geom.V2(800, 40)))
	sc.AddGameObject(floor)

	zone := scene.NewGameObject("zone")
	zone.Transform().Position = geom.V2(0, 150)
	zoneCol := scene.NewBoxCollider(200, 100)
	zoneCol.IsTrigger = true
	zone.AddComponent(zoneCol)
	zone.AddComponent(scene.NewScript("zone-announcer"))
	sc.AddGameObject(zone)

	ball := scene.NewGameObject("ball")
	ball.Tag = "ball"
	ball.Transform().Position = geom.V2(-20, 0)
	ball.AddComponent(scene.NewCircleCollider(10))
	body := scene.NewRigidBody()
	body.UseGravity = true
	ball.AddComponent(body)
	ball.AddComponent(scene.NewRenderable(scene.RenderEllipse, geom.V2(20, 20)))
	sc.AddGameObject(ball)

	// Second ball cloned from the first, offset so they land apart.
	twin := ball.Clone()
	twin.Name = "ball-twin"
	twin.Transform().Position = geom.V2(40, -60)
	sc.AddGameObject(twin)

	return sc
}
