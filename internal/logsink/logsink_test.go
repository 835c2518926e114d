package logsink_test

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/rangecal/internal/logsink"
)

func TestSink(t *testing.T) {

	t.Run("zerolog output", func(t *testing.T) {
		sink := logsink.New(10)
		logger := zerolog.New(sink)
		logger.Debug().Str("date", "2013-10-05").Msg("day clicked")

		entries := sink.Get()
		if len(entries) != 1 {
			t.Fatal("expected one entry, got", len(entries))
		}
		if entries[0]["date"] != "2013-10-05" {
			t.Error("expected the field to be kept", entries[0])
		}
		if logsink.Summary(entries[0]) != "debug: day clicked" {
			t.Error("unexpected summary", logsink.Summary(entries[0]))
		}
	})

	t.Run("bounded", func(t *testing.T) {
		sink := logsink.New(3)
		logger := zerolog.New(sink)
		for i := 0; i < 5; i++ {
			logger.Info().Msg(fmt.Sprint(i))
		}
		if sink.Len() != 3 {
			t.Fatal("expected three entries, got", sink.Len())
		}
		last := sink.Last(2)
		if len(last) != 2 || last[0]["message"] != "3" || last[1]["message"] != "4" {
			t.Error("unexpected last entries", last)
		}
		if sink.Get()[0]["message"] != "2" {
			t.Error("expected the oldest entries to be dropped")
		}
		if len(sink.Last(10)) != 3 || sink.Last(0) != nil {
			t.Error("unexpected bounds handling of Last")
		}
	})

	t.Run("malformed input", func(t *testing.T) {
		sink := logsink.New(0)
		_, err := sink.Write([]byte("not json"))
		if err == nil {
			t.Error("expected error")
		}
		if sink.Len() != 0 {
			t.Error("expected no entry")
		}
	})
}
