package cmd

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"wakeproxy/pkg/api"
	"wakeproxy/pkg/dispatcher"
	"wakeproxy/pkg/iface"
	"wakeproxy/pkg/lifecycle"
	"wakeproxy/pkg/logging"
	"wakeproxy/pkg/mappers"
	"wakeproxy/pkg/models"
	"wakeproxy/pkg/notify"
	"wakeproxy/pkg/server"
	"wakeproxy/pkg/upstream"
	"wakeproxy/pkg/version"
	"wakeproxy/pkg/wol"
	"wakeproxy/pkg/yaml"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var runCmd = cobra.Command{
	Use:   "run",
	Short: "Runs the wake proxy",
	Run:   runProxy,
}

func init() {
	addRunFlags(runCmd.Flags())
}

func addRunFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "Optional YAML configuration file. Flags override its values.")
	flags.StringP("target", "t", "", "The mac address of the target machine on the lan (00:00:00:00:00:00).")
	flags.IntP("port", "p", mappers.DefaultPort, "The listening port of the http server.")
	flags.String("iface", "", "The interface magic packets are broadcast on.")
	flags.String("broadcast", "", "The broadcast address magic packets are sent to (default 255.255.255.255:9).")
	flags.String("upstream", "", "The host of the upstream service suspend requests are relayed to.")
	flags.Int("upstream-port", mappers.DefaultUpstreamPort, "The port of the upstream service.")
	flags.String("log-file", mappers.DefaultLogFile, "The file requests are logged to, '-' for stdout.")
	flags.String("shutdown-mode", string(models.ShutdownSignal), "How the shutdown route stops the proxy: signal, inprocess or disabled.")
}

func runProxy(cmd *cobra.Command, args []string) {
	if err := run(cmd.Flags()); err != nil {
		log.Fatalf("%v", err)
	}
}

// run serves the proxy until a signal or the shutdown route stops it.
func run(flags *pflag.FlagSet) error {
	fileConfig, err := loadConfig(flags)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	config, err := mappers.MapConfig(fileConfig, iface.ResolveBroadcast)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile, err := logging.Setup(config.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file '%s': %w", config.LogFile, err)
	}
	defer logFile.Close()

	log.Printf("====== %s %s initialization ======", version.Name, version.Version)
	log.Printf("Starting with address: %s and target: %s", config.ListenAddr, config.Target)
	if config.Wake.Interface != "" {
		log.Printf("Broadcasting on %s", iface.Describe(config.Wake.Interface))
	}
	log.Printf("Broadcasting magic packets to %s", config.Wake.Broadcast)
	log.Printf("Relaying to upstream %s", config.Upstream.BaseURL)

	sigCtx, stop := setupSignalContext()
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	d, err := dispatcher.New(*config, dispatcher.Deps{
		Upstream: upstream.NewClient(config.Upstream.BaseURL),
		Waker:    wol.NewUDPSender(config.Wake),
		Stopper:  lifecycle.ForMode(config.Shutdown, cancel),
	})
	if err != nil {
		return fmt.Errorf("failed to build routes: %w", err)
	}

	ln, err := net.Listen("tcp", config.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", config.ListenAddr, err)
	}

	srv := server.New(d)
	srv.OnShutdown = func() {
		if _, err := notify.Stopping(); err != nil {
			log.Printf("Failed to notify supervisor: %v", err)
		}
	}
	if _, err := notify.Ready(); err != nil {
		log.Printf("Failed to notify supervisor: %v", err)
	}
	if err := srv.Serve(ctx, ln); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("Exiting...")
	return nil
}

// loadConfig reads the optional configuration file and applies the flags set on the command line.
func loadConfig(flags *pflag.FlagSet) (*api.Config, error) {
	config := &api.Config{}

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		config, err = yaml.NewParser().Parse(path)
		if err != nil {
			return nil, err
		}
	}

	stringFlags := map[string]*string{
		"target":        &config.Target,
		"iface":         &config.Wake.Interface,
		"broadcast":     &config.Wake.Broadcast,
		"upstream":      &config.Upstream.Host,
		"log-file":      &config.LogFile,
		"shutdown-mode": &config.ShutdownMode,
	}
	for name, dst := range stringFlags {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetString(name); err != nil {
			return nil, err
		}
	}

	intFlags := map[string]*int{
		"port":          &config.Port,
		"upstream-port": &config.Upstream.Port,
	}
	for name, dst := range intFlags {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetInt(name); err != nil {
			return nil, err
		}
	}
	return config, nil
}

func setupSignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
