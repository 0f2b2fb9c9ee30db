package control_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-arrays/control"
)

func TestSnapshot(t *testing.T) {
	in := control.NewIntrospector()
	in.RegisterProbe("answer", func() any { return 42 })
	in.RegisterProbe("name", func() any { return "arrays" })

	snap := in.Snapshot()
	require.Equal(t, 42, snap["answer"])
	require.Equal(t, "arrays", snap["name"])
	require.False(t, in.LastRead().IsZero())
}

func TestProbeReplacement(t *testing.T) {
	in := control.NewIntrospector()
	in.RegisterProbe("v", func() any { return 1 })
	in.RegisterProbe("v", func() any { return 2 })
	require.Equal(t, 2, in.Snapshot()["v"])
}

func TestYAMLExport(t *testing.T) {
	in := control.NewIntrospector()
	in.RegisterProbe("live_bytes", func() any { return int64(1024) })

	out, err := in.YAML()
	require.NoError(t, err)
	require.Contains(t, string(out), "live_bytes: 1024")
}
