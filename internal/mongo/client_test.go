package mongo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/mongo"
)

func TestOptionsValidate(t *testing.T) {
	err := (&mongo.Options{}).Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	err = (&mongo.Options{URI: "mongodb://localhost:27017", Database: "  "}).Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	opts := &mongo.Options{URI: "mongodb://localhost:27017", Database: "charsheet"}
	require.NoError(t, opts.Validate())
	assert.Equal(t, 10*time.Second, opts.Timeout)
}

func TestConnectRejectsBadURI(t *testing.T) {
	_, err := mongo.Connect(context.Background(), &mongo.Options{URI: "postgres://nope", Database: "charsheet"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestConnectUnreachable(t *testing.T) {
	_, err := mongo.Connect(context.Background(), &mongo.Options{
		URI:      "mongodb://127.0.0.1:1",
		Database: "charsheet",
		Timeout:  200 * time.Millisecond,
	})
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestConnectAndClose(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set; skipping mongo integration test")
	}

	client, err := mongo.Connect(context.Background(), &mongo.Options{URI: uri, Database: "charsheet_test"})
	require.NoError(t, err)
	assert.Equal(t, "charsheet_test", client.Database.Name())
	assert.NoError(t, client.Close(context.Background()))
}
