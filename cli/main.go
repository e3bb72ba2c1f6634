package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"go-algos/algos"
	"go-algos/bloom"
	"go-algos/ui"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	Program = "go-algos"
	Version = "0.1.0"

	EnvPrefix = "GOALGOS"
)

type options struct {
	configFile string
	loglevel   string

	algo              string
	expectedItems     uint32
	falsePositiveRate float64
	insertKeys        []string
	lookupKeys        []string
	showBits          bool
	items             int32
	max               int32
	seed              int64
}

// NewRoot builds the command tree. Every call gets its own viper instance.
func NewRoot() *cobra.Command {
	opts := &options{}
	v := viper.New()
	defaults := bloom.DefaultDemoConfig()

	root := &cobra.Command{
		Use:           Program,
		Short:         "Runs algorithms written while learning Go",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "Configuration file (yaml, toml or json)")
	root.PersistentFlags().StringVar(&opts.loglevel, "loglevel", "info", "Console log level")

	algosCmd := &cobra.Command{
		Use:   "algos",
		Short: "Runs an algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlgo(cmd.OutOrStdout(), opts)
		},
	}
	flags := algosCmd.Flags()
	flags.StringVarP(&opts.algo, "algo", "a", "bloom_filter", "Selects the algorithm to run, options include: "+strings.Join(algos.Default().Names(), ", "))
	flags.Uint32Var(&opts.expectedItems, "expected-items", defaults.ExpectedItems, "Bloom filter expected number of items")
	flags.Float64Var(&opts.falsePositiveRate, "false-positive-rate", defaults.FalsePositiveRate, "Bloom filter target false positive rate")
	flags.StringSliceVar(&opts.insertKeys, "insert", defaults.InsertKeys, "Keys inserted into the bloom filter")
	flags.StringSliceVar(&opts.lookupKeys, "lookup", defaults.LookupKeys, "Keys looked up in the bloom filter")
	flags.BoolVar(&opts.showBits, "show-bits", false, "Print the bloom filter bit array")
	flags.Int32Var(&opts.items, "items", 100, "Number of random items to sort")
	flags.Int32Var(&opts.max, "max", 1000, "Upper bound (exclusive) of random items to sort")
	flags.Int64Var(&opts.seed, "seed", 0, "Random seed for sort input, 0 uses the clock")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Program, Version)
		},
	}

	root.AddCommand(algosCmd, versionCmd)

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := loadConfiguration(v, opts.configFile); err != nil {
			return err
		}
		if err := bindFlags(v, root); err != nil {
			return err
		}
		return ui.SetLoglevel(opts.loglevel)
	}
	return root
}

func loadConfiguration(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile == "" {
		return nil
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading configuration %s", configFile)
	}
	ui.Logger().Debug().Str("file", v.ConfigFileUsed()).Msg("using configuration file")
	return nil
}

// bindFlags applies viper values to every flag not set on the command line.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	var bindErr error
	apply := func(f *pflag.Flag) {
		if bindErr != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		var err error
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			err = sv.Replace(v.GetStringSlice(f.Name))
		} else {
			err = f.Value.Set(v.GetString(f.Name))
		}
		if err != nil {
			bindErr = errors.Wrapf(err, "configuration value for %s", f.Name)
		}
	}
	cmd.PersistentFlags().VisitAll(apply)
	cmd.Flags().VisitAll(apply)
	for _, subCommand := range cmd.Commands() {
		if err := bindFlags(v, subCommand); err != nil {
			return err
		}
	}
	return bindErr
}

func runAlgo(out io.Writer, opts *options) error {
	fmt.Fprintf(out, "Running algorithm: %q\n", opts.algo)

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctx := algos.Context{
		Out:    out,
		Logger: *ui.Logger(),
		Bloom: bloom.DemoConfig{
			ExpectedItems:     opts.expectedItems,
			FalsePositiveRate: opts.falsePositiveRate,
			InsertKeys:        opts.insertKeys,
			LookupKeys:        opts.lookupKeys,
			ShowBits:          opts.showBits,
		},
		Items: opts.items,
		Max:   opts.max,
		Rand:  rand.New(rand.NewSource(seed)),
	}
	return algos.Default().Run(opts.algo, ctx)
}

func CliMainEntryPoint() error {
	return NewRoot().Execute()
}

func Main() {
	if err := CliMainEntryPoint(); err != nil {
		ui.Logger().Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
