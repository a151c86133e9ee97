package mqtt

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const publishTimeout = 5 * time.Second

// Options - параметры подключения к брокеру
type Options struct {
	Broker   string
	ClientID string
	Username string
	Password string
}

// Client - обертка над paho клиентом для публикации уведомлений
type Client struct {
	client paho.Client
}

// NewClient подключается к брокеру с автопереподключением
func NewClient(opts Options) (*Client, error) {
	pahoOpts := paho.NewClientOptions()
	pahoOpts.AddBroker(opts.Broker)
	pahoOpts.SetClientID(opts.ClientID)
	if opts.Username != "" {
		pahoOpts.SetUsername(opts.Username)
	}
	if opts.Password != "" {
		pahoOpts.SetPassword(opts.Password)
	}
	pahoOpts.SetAutoReconnect(true)
	pahoOpts.SetCleanSession(true)

	client := paho.NewClient(pahoOpts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &Client{client: client}, nil
}

// Publish публикует сообщение и ждет подтверждения не дольше publishTimeout
func (c *Client) Publish(topic string, qos byte, retained bool, payload []byte) error {
	token := c.client.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("timed out publishing to topic %s", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, err)
	}
	return nil
}

func (c *Client) Disconnect() {
	c.client.Disconnect(250)
}
