package testing

import (
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
)

// NewRedisMock returns a client wired to a redismock. Unmet expectations
// fail the test at cleanup.
func NewRedisMock(t *testing.T) (*redis.Client, redismock.ClientMock) {
	t.Helper()

	rdb, mock := redismock.NewClientMock()
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("redis expectations: %s", err)
		}
		_ = rdb.Close()
	})

	return rdb, mock
}
