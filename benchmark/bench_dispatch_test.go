package benchmark_test

import (
	"context"
	stdio "io"
	"testing"

	"github.com/dzonerzy/go-dispatch/dispatch"
)

func benchDispatcher(b *testing.B) *dispatch.Dispatcher {
	b.Helper()
	d, err := dispatch.New("bench",
		dispatch.Command{
			Name:        "serve",
			Description: "Start the server",
			Flags: map[string]dispatch.FlagDef{
				"port":  {Default: 8080, Description: "Listen port", EnvVar: "BENCH_PORT"},
				"host":  {Default: "localhost", Description: "Bind address"},
				"watch": {Default: false, Description: "Reload on change"},
			},
			Handler: func(*dispatch.Context) error { return nil },
		},
		dispatch.Command{
			Name:        "db migrate",
			Description: "Run migrations",
			Handler:     func(*dispatch.Context) error { return nil },
		},
		dispatch.Command{
			Name:        "db",
			Description: "Database ops",
			Handler:     func(*dispatch.Context) error { return nil },
		},
	)
	if err != nil {
		b.Fatal(err)
	}
	d.IO().WithOut(stdio.Discard).WithErr(stdio.Discard)
	d.WithEnvLookup(func(string) (string, bool) { return "", false })
	return d
}

func BenchmarkDispatchValuedFlags(b *testing.B) {
	d := benchDispatcher(b)
	args := []string{"serve", "--port", "9000", "--host", "0.0.0.0", "--watch"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = d.Run(context.Background(), args)
	}
}

func BenchmarkDispatchShortFlags(b *testing.B) {
	d := benchDispatcher(b)
	args := []string{"serve", "-p", "9000", "-w"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = d.Run(context.Background(), args)
	}
}

func BenchmarkDispatchLongestPrefix(b *testing.B) {
	d := benchDispatcher(b)
	args := []string{"db", "migrate"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = d.Run(context.Background(), args)
	}
}

func BenchmarkDispatchUnknownCommand(b *testing.B) {
	d := benchDispatcher(b)
	args := []string{"serv"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = d.RunAndGetExitCode(context.Background(), args)
	}
}

func BenchmarkOverviewRendering(b *testing.B) {
	d := benchDispatcher(b)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = d.Run(context.Background(), nil)
	}
}

func BenchmarkCommandHelpRendering(b *testing.B) {
	d := benchDispatcher(b)
	args := []string{"serve", "--help"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = d.Run(context.Background(), args)
	}
}
