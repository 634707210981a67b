// Package mqtt publishes finished schedules to an MQTT broker so downstream
// consumers (home automation, dashboards) can pick them up.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/kilianp07/chargeplan/core/model"
	"github.com/kilianp07/chargeplan/infra/logger"
)

// Config defines the connection parameters for the Paho MQTT publisher.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
	Retain   bool   `json:"retain"`
}

// SetDefaults applies fallback values.
func (c *Config) SetDefaults() {
	if c.Topic == "" {
		c.Topic = "chargeplan/schedule"
	}
	if c.ClientID == "" {
		c.ClientID = fmt.Sprintf("chargeplan-%s", uuid.NewString()[:8])
	}
}

// Validate checks mandatory fields when the publisher is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("broker is required when mqtt is enabled")
	}
	return nil
}

const tokenTimeout = 5 * time.Second

// pahoClient is the subset of the Paho client the publisher relies on.
type pahoClient interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// newMQTTClient points to the Paho constructor. It can be overridden in tests.
var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Publisher sends schedules to a single topic.
type Publisher struct {
	cli    pahoClient
	topic  string
	qos    byte
	retain bool
	log    logger.Logger
}

// schedulePayload is the wire format of a published schedule.
type schedulePayload struct {
	PlanID           string    `json:"plan_id"`
	GeneratedAt      time.Time `json:"generated_at"`
	Status           string    `json:"status"`
	TotalCost        float64   `json:"total_cost"`
	FinalSoC         float64   `json:"final_soc"`
	EnergyChargedKWh float64   `json:"energy_charged_kwh"`
	ChargeKW         []float64 `json:"charge_kw"`
	GridImportKW     []float64 `json:"grid_import_kw"`
	GridExportKW     []float64 `json:"grid_export_kw"`
	SoC              []float64 `json:"soc"`
}

// NewPublisher connects to the broker and returns a ready Publisher.
func NewPublisher(cfg Config) (*Publisher, error) {
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(tokenTimeout)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	cli := newMQTTClient(opts)
	tok := cli.Connect()
	if !tok.WaitTimeout(tokenTimeout) {
		return nil, fmt.Errorf("mqtt connect timeout after %s", tokenTimeout)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return &Publisher{
		cli:    cli,
		topic:  cfg.Topic,
		qos:    cfg.QoS,
		retain: cfg.Retain,
		log:    logger.New("mqtt-publisher"),
	}, nil
}

// PublishSchedule serializes the schedule and publishes it.
func (p *Publisher) PublishSchedule(sched *model.Schedule) error {
	payload, err := json.Marshal(schedulePayload{
		PlanID:           sched.ID,
		GeneratedAt:      time.Now().UTC(),
		Status:           sched.Status.String(),
		TotalCost:        sched.TotalCost,
		FinalSoC:         sched.FinalSoC(),
		EnergyChargedKWh: sched.EnergyChargedKWh,
		ChargeKW:         sched.ChargeKW,
		GridImportKW:     sched.GridImportKW,
		GridExportKW:     sched.GridExportKW,
		SoC:              sched.SoC,
	})
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}

	tok := p.cli.Publish(p.topic, p.qos, p.retain, payload)
	if !tok.WaitTimeout(tokenTimeout) {
		return fmt.Errorf("mqtt publish timeout after %s", tokenTimeout)
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("mqtt publish: %w", err)
	}
	p.log.Debugw("schedule published", map[string]any{"topic": p.topic, "plan_id": sched.ID})
	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	p.cli.Disconnect(250)
}
