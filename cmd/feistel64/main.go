// Command feistel64 encrypts, decrypts and analyzes single 64-bit blocks.
//
//	feistel64 [flags] <command> [input]
//
// The key comes from -key or -passphrase, then the FEISTEL64_KEY variable,
// then FEISTEL64_PASSPHRASE, then a prompt on a terminal or the first line
// of standard input. Variables are also read
// from the file named by -env.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/jedisct1/go-feistel64"
)

const (
	envKey        = "FEISTEL64_KEY"
	envPassphrase = "FEISTEL64_PASSPHRASE"
	envSalt       = "FEISTEL64_SALT"
	defaultEnv    = ".env"
)

const usage = `usage: feistel64 [flags] <command> [input]

commands:
  encrypt <text>        encrypt up to 8 bytes (space padded)
  decrypt <hex>         decrypt 16 hex characters
  avalanche <text>      flip the lowest bit and count changed output bits
  differential <text>   flip the lowest bit and show the output difference
  linear <text>         compare input and output bit parities
  sweep <text>          flip every input bit in turn
  roundkeys             print the scheduled round keys
  sbox <round>          print the substitution table for a round (1-32)

flags:
`

// Config holds the streams and environment the command runs against.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Getenv looks up process environment variables.
	Getenv func(string) string

	// ReadSecret prompts for a secret without echo. Nil disables prompting.
	ReadSecret func(prompt string) ([]byte, error)
}

// DefaultConfig returns a Config bound to the process.
func DefaultConfig() Config {
	cfg := Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		cfg.ReadSecret = func(prompt string) ([]byte, error) {
			fmt.Fprint(os.Stderr, prompt)
			defer fmt.Fprintln(os.Stderr)
			return term.ReadPassword(int(os.Stdin.Fd()))
		}
	}
	return cfg
}

func main() {
	if err := run(os.Args, DefaultConfig()); err != nil {
		fatal("%v", err)
	}
}

type options struct {
	key        string
	passphrase string
	salt       string
	envFile    string
	keyed      bool
	trace      bool
}

func run(args []string, cfg Config) error {
	logger := log.New(cfg.Stderr, "feistel64: ", 0)

	fset := flag.NewFlagSet("feistel64", flag.ContinueOnError)
	fset.SetOutput(cfg.Stderr)
	fset.Usage = func() {
		fmt.Fprint(cfg.Stderr, usage)
		fset.PrintDefaults()
	}

	var opts options
	fset.StringVar(&opts.key, "key", "", "master key as 16 hex characters")
	fset.StringVar(&opts.passphrase, "passphrase", "", "derive the master key from a passphrase")
	fset.StringVar(&opts.salt, "salt", "", "salt for -passphrase")
	fset.StringVar(&opts.envFile, "env", defaultEnv, "file to read environment variables from")
	fset.BoolVar(&opts.keyed, "keyed", false, "mix round keys into the round function")
	fset.BoolVar(&opts.trace, "trace", false, "print the state after every round")

	if len(args) == 0 {
		args = []string{"feistel64"}
	}
	if err := fset.Parse(args[1:]); err != nil {
		return err
	}
	if fset.NArg() < 1 {
		fset.Usage()
		return errors.New("missing command")
	}

	command, rest := fset.Arg(0), fset.Args()[1:]

	if command == "sbox" {
		return printSBox(cfg.Stdout, rest)
	}

	env, err := loadEnv(opts.envFile, opts.envFile != defaultEnv)
	if err != nil {
		return err
	}
	lookup := func(name string) string {
		if cfg.Getenv != nil {
			if v := cfg.Getenv(name); v != "" {
				return v
			}
		}
		return env[name]
	}

	var cipherOpts []feistel64.Option
	if opts.keyed {
		cipherOpts = append(cipherOpts, feistel64.WithRoundKeyMixing())
	} else {
		logger.Printf("round keys are scheduled but not mixed; use -keyed to make the ciphertext depend on the key")
	}

	session, err := openSession(opts, lookup, secretReader(cfg), cipherOpts)
	if err != nil {
		return err
	}

	if command == "roundkeys" {
		printRoundKeys(cfg.Stdout, session.Cipher().RoundKeys())
		return nil
	}

	if len(rest) != 1 {
		return fmt.Errorf("%s: expected exactly one input argument", command)
	}
	input := rest[0]

	switch command {
	case "encrypt":
		return encrypt(cfg.Stdout, session, input, opts.trace)
	case "decrypt":
		return decrypt(cfg.Stdout, session, input, opts.trace)
	case "avalanche":
		return avalanche(cfg.Stdout, session, input)
	case "differential":
		return differential(cfg.Stdout, session, input)
	case "linear":
		return linear(cfg.Stdout, session, input)
	case "sweep":
		return sweep(cfg.Stdout, session, input)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// loadEnv reads variables from path. A missing file is an error only when
// required is set.
func loadEnv(path string, required bool) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return env, nil
}

func openSession(opts options, lookup func(string) string, readSecret func(string) ([]byte, error), cipherOpts []feistel64.Option) (*feistel64.Session, error) {
	if opts.key != "" {
		return feistel64.NewSession(opts.key, cipherOpts...)
	}
	if opts.passphrase != "" {
		return feistel64.NewSessionFromPassphrase([]byte(opts.passphrase), []byte(opts.salt), cipherOpts...)
	}
	if key := lookup(envKey); key != "" {
		return feistel64.NewSession(key, cipherOpts...)
	}
	if pass := lookup(envPassphrase); pass != "" {
		return feistel64.NewSessionFromPassphrase([]byte(pass), []byte(lookup(envSalt)), cipherOpts...)
	}

	secret, err := readSecret("Enter 16-character hex key (64-bit): ")
	if err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}
	key := strings.TrimSpace(string(secret))
	if key == "" {
		return nil, fmt.Errorf("no key: pass -key or set %s", envKey)
	}
	return feistel64.NewSession(key, cipherOpts...)
}

// secretReader prompts through cfg.ReadSecret when available and otherwise
// takes the first line of cfg.Stdin.
func secretReader(cfg Config) func(string) ([]byte, error) {
	if cfg.ReadSecret != nil {
		return cfg.ReadSecret
	}
	return func(string) ([]byte, error) {
		if cfg.Stdin == nil {
			return nil, nil
		}
		sc := bufio.NewScanner(cfg.Stdin)
		if sc.Scan() {
			return sc.Bytes(), nil
		}
		return nil, sc.Err()
	}
}

func encrypt(w io.Writer, s *feistel64.Session, input string, trace bool) error {
	enc, hexBlock, err := s.Encrypt([]byte(input))
	if err != nil {
		return err
	}
	if trace {
		// Replay from the padded plaintext block.
		_, states := s.Cipher().EncryptTrace(s.Cipher().DecryptBlock(enc))
		printTrace(w, "Encryption", states)
	}

	fmt.Fprintf(w, "Encrypted Data: %s\n", hexBlock)
	fmt.Fprintf(w, "Encrypted Binary Output: %s\n", feistel64.FormatBlockBinary(enc))
	return nil
}

func decrypt(w io.Writer, s *feistel64.Session, input string, trace bool) error {
	raw, text, err := s.Decrypt(input)
	if err != nil {
		return err
	}
	if trace {
		block, _ := feistel64.ParseBlockHex(input)
		_, states := s.Cipher().DecryptTrace(block)
		printTrace(w, "Decryption", states)
	}

	fmt.Fprintf(w, "Decrypted Hexadecimal Output: %X\n", raw[:])
	fmt.Fprintf(w, "Decrypted Text: %q\n", text)
	return nil
}

func avalanche(w io.Writer, s *feistel64.Session, input string) error {
	res, err := s.Avalanche([]byte(input))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Avalanche Effect: %d/64 bits changed (%d%%)\n", res.BitsChanged, res.Percent)
	fmt.Fprintf(w, "Original Binary Output: %s\n", feistel64.FormatBlockBinary(res.Original))
	fmt.Fprintf(w, "Flipped Binary Output:  %s\n", feistel64.FormatBlockBinary(res.Flipped))
	return nil
}

func differential(w io.Writer, s *feistel64.Session, input string) error {
	res, err := s.Differential([]byte(input))
	if err != nil {
		return err
	}
	positions := make([]string, len(res.Positions))
	for i, p := range res.Positions {
		positions[i] = fmt.Sprint(p)
	}
	fmt.Fprintf(w, "Differential Output: %s\n", feistel64.FormatBlockHex(res.Differential))
	fmt.Fprintf(w, "Flipped Bit Positions: %s\n", strings.Join(positions, " "))
	return nil
}

func linear(w io.Writer, s *feistel64.Session, input string) error {
	res, err := s.Linear([]byte(input))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Linear Correlation: XOR(InputBits) = %d, XOR(OutputBits) = %d\n", res.InputParity, res.OutputParity)
	fmt.Fprintln(w, res.Correlation)
	return nil
}

func sweep(w io.Writer, s *feistel64.Session, input string) error {
	res, err := s.AvalancheSweep([]byte(input))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Avalanche Sweep: min %d, max %d, mean %.2f bits changed\n", res.Min, res.Max, res.Mean)
	for i := 0; i < 64; i += 16 {
		fmt.Fprintf(w, "bits %2d-%2d: %v\n", i, i+15, res.PerBit[i:i+16])
	}
	return nil
}

func printTrace(w io.Writer, label string, states []feistel64.RoundState) {
	for _, st := range states {
		fmt.Fprintf(w, "%s Round %d: Left Half = %08X, Right Half = %08X (Binary: %s)\n",
			label, st.Round+1, st.Left, st.Right, feistel64.FormatBlockBinary(st.Block()))
	}
}

func printRoundKeys(w io.Writer, rk feistel64.RoundKeys) {
	for i, k := range rk {
		fmt.Fprintf(w, "Round %d Key: 0x%02x\n", i+1, k)
	}
}

func printSBox(w io.Writer, args []string) error {
	if len(args) != 1 {
		return errors.New("sbox: expected a round number")
	}
	round, err := strconv.Atoi(args[0])
	if err != nil || round < 1 || round > feistel64.Rounds {
		return fmt.Errorf("sbox: round must be between 1 and %d", feistel64.Rounds)
	}

	sbox := feistel64.GenerateSBox(round - 1)
	fmt.Fprintf(w, "S-box for Round %d:\n", round)
	for i, v := range sbox {
		sep := " "
		if i%16 == 15 {
			sep = "\n"
		}
		fmt.Fprintf(w, "%d%s", v, sep)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
