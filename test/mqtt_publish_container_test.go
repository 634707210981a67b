package test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kilianp07/chargeplan/core/model"
	"github.com/kilianp07/chargeplan/infra/mqtt"
)

const mosquittoConf = "listener 1883\nallow_anonymous true\n"

func startMosquitto(ctx context.Context, t *testing.T) (tc.Container, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mosquitto.conf")
	if err := os.WriteFile(path, []byte(mosquittoConf), 0644); err != nil {
		t.Fatalf("write conf: %v", err)
	}

	req := tc.ContainerRequest{
		Image:        "eclipse-mosquitto:2.0",
		ExposedPorts: []string{"1883/tcp"},
		WaitingFor:   wait.ForListeningPort("1883/tcp"),
		Files: []tc.ContainerFile{
			{
				HostFilePath:      path,
				ContainerFilePath: "/mosquitto/config/mosquitto.conf",
				FileMode:          0644,
			},
		},
	}
	cont, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Skipf("container start (docker unavailable?): %v", err)
	}
	host, err := cont.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := cont.MappedPort(ctx, "1883/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	return cont, fmt.Sprintf("tcp://%s:%s", host, port.Port())
}

func TestPublishScheduleOverBroker(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()
	cont, broker := startMosquitto(ctx, t)
	defer func() {
		if err := cont.Terminate(ctx); err != nil {
			t.Logf("terminate: %v", err)
		}
	}()

	received := make(chan []byte, 1)
	subOpts := paho.NewClientOptions().AddBroker(broker).SetClientID("sub")
	sub := paho.NewClient(subOpts)
	tok := sub.Connect()
	tok.Wait()
	if tok.Error() != nil {
		t.Fatalf("subscriber connect: %v", tok.Error())
	}
	defer sub.Disconnect(100)
	tok = sub.Subscribe("chargeplan/schedule", 1, func(_ paho.Client, msg paho.Message) {
		received <- msg.Payload()
	})
	tok.Wait()
	if tok.Error() != nil {
		t.Fatalf("subscribe: %v", tok.Error())
	}

	cfg := mqtt.Config{Enabled: true, Broker: broker, QoS: 1}
	cfg.SetDefaults()
	pub, err := mqtt.NewPublisher(cfg)
	if err != nil {
		t.Fatalf("publisher: %v", err)
	}
	defer pub.Close()

	sched := &model.Schedule{
		ID:           "it-plan",
		ChargeKW:     []float64{0, 5},
		GridImportKW: []float64{0, 5},
		GridExportKW: []float64{0, 0},
		SoC:          []float64{0, 0, 0.5},
		TotalCost:    0.5,
		Status:       model.StatusOptimal,
	}
	if err := pub.PublishSchedule(sched); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case payload := <-received:
		var got map[string]any
		if err := json.Unmarshal(payload, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got["plan_id"] != "it-plan" {
			t.Fatalf("unexpected plan_id: %v", got["plan_id"])
		}
	case <-time.After(10 * time.Second):
		t.Fatal("no schedule received on the broker")
	}
}
