// Package mongo connects to MongoDB for the character store
package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

const defaultTimeout = 10 * time.Second

// Options configures the connection
type Options struct {
	URI      string
	Database string
	// Timeout bounds server selection and the initial ping (optional, defaults to 10 seconds)
	Timeout time.Duration
}

// Validate checks the options and sets defaults
func (o *Options) Validate() error {
	if o == nil {
		return errors.InvalidArgument("options cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("URI", o.URI, vb)
	errors.ValidateRequired("Database", o.Database, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return nil
}

// Client holds a connected driver client and the selected database
type Client struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect dials MongoDB and pings the primary
func Connect(ctx context.Context, opts *Options) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetServerSelectionTimeout(opts.Timeout)
	if err := clientOpts.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid mongo uri")
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "mongo connect failed")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "mongo ping failed")
	}

	return &Client{
		Client:   client,
		Database: client.Database(opts.Database),
	}, nil
}

// Close disconnects the client
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.Client.Disconnect(ctx); err != nil {
		return errors.Wrap(err, "mongo disconnect failed")
	}
	return nil
}
