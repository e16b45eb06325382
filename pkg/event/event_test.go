package event_test

import (
	"sync"
	"testing"

	"github.com/shashiranjanraj/kirana/pkg/event"
)

func TestFireReachesAllListeners(t *testing.T) {
	event.Flush()
	defer event.Flush()

	var got []interface{}
	event.Listen("product.created", func(p interface{}) { got = append(got, p) })
	event.Listen("product.created", func(p interface{}) { got = append(got, p) })
	event.Listen("brand.created", func(p interface{}) { t.Error("wrong event fired") })

	event.Fire("product.created", 7)

	if len(got) != 2 || got[0] != 7 || got[1] != 7 {
		t.Fatalf("unexpected payloads %v", got)
	}
}

func TestFireAsyncDoesNotBlock(t *testing.T) {
	event.Flush()
	defer event.Flush()

	var wg sync.WaitGroup
	wg.Add(1)
	event.Listen("ping", func(interface{}) { wg.Done() })

	event.FireAsync("ping", nil)
	wg.Wait()
}

func TestFireWithoutListeners(t *testing.T) {
	event.Flush()
	event.Fire("nobody.cares", nil) // must not panic
}
