package testing

import (
	"bytes"
	"log/slog"
	"os"
	"strings"

	"github.com/galaplate/patterns/console"
	"github.com/galaplate/patterns/logger"
	"github.com/stretchr/testify/suite"
)

type TestConfig struct {
	// LogLevel is applied to the logger for every test. Defaults to debug
	// so command logs land in the per-test log file.
	LogLevel slog.Level
	// CustomBootstrap runs after the kernel is created.
	CustomBootstrap func(*TestCase)
}

// TestCase is a suite base that gives each test a fresh console kernel
// printing into Output, and a log file under a temporary project root.
type TestCase struct {
	suite.Suite
	Kernel *console.Kernel
	Output *bytes.Buffer
	Config *TestConfig

	projectRoot string
}

func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		LogLevel: slog.LevelDebug,
	}
}

func (tc *TestCase) SetupTest() {
	if tc.Config == nil {
		tc.Config = DefaultTestConfig()
	}

	tc.projectRoot = tc.T().TempDir()
	tc.Require().NoError(logger.ReinitializeForTesting(tc.projectRoot))
	logger.SetLevel(tc.Config.LogLevel)

	tc.Output = &bytes.Buffer{}
	tc.Kernel = console.NewKernel(tc.Output)
	tc.Kernel.RegisterCommands()

	if tc.Config.CustomBootstrap != nil {
		tc.Config.CustomBootstrap(tc)
	}
}

func (tc *TestCase) TearDownTest() {
	_ = logger.SetOutput(os.Stderr)
	logger.SetLevel(slog.LevelWarn)
}

// ProjectRoot is the temporary directory the current test logs into.
func (tc *TestCase) ProjectRoot() string {
	return tc.projectRoot
}

// Call runs signature on the kernel and fails the test on error.
func (tc *TestCase) Call(signature string, args ...string) {
	tc.Require().NoError(tc.Kernel.Call(signature, args))
}

// Lines returns the captured output split into lines, without the trailing
// empty line.
func (tc *TestCase) Lines() []string {
	out := strings.TrimRight(tc.Output.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func (tc *TestCase) AssertOutputLines(expected ...string) {
	tc.Equal(expected, tc.Lines())
}
