package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/leandrodaf/rtmidi/internal/logger"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
	"github.com/leandrodaf/rtmidi/sdk/midi"
)

func main() {
	app := cli.NewApp()
	app.Name = "midiprobe"
	app.Usage = "inspect and exercise the MIDI ports on this machine"
	app.Version = midi.Version()
	app.Compiled = time.Now()
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "api",
			Usage: "force a backend (core, alsa, winmm) instead of auto-selecting",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list",
			Usage:  "print every visible input and output port",
			Action: listPorts,
		},
		{
			Name:      "monitor",
			Usage:     "open an input port and print incoming messages",
			ArgsUsage: "[port]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "sysex",
					Usage: "also print system exclusive messages",
				},
				cli.BoolFlag{
					Name:  "clock",
					Usage: "also print timing clock ticks",
				},
				cli.BoolFlag{
					Name:  "sense",
					Usage: "also print active sensing",
				},
			},
			Action: monitorPort,
		},
		{
			Name:      "send",
			Usage:     "open an output port and send one message, bytes in hex",
			ArgsUsage: "port bytes...",
			Action:    sendMessage,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func clientOptions(c *cli.Context) ([]contracts.Option, error) {
	opts := []contracts.Option{
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithErrorCallback(func(kind contracts.ErrorKind, text string) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", kind, text)
		}),
		contracts.WithClientName("midiprobe"),
	}
	if name := c.GlobalString("api"); name != "" {
		api := contracts.APIByName(name)
		if api == contracts.APIUnspecified {
			return nil, fmt.Errorf("unknown api %q", name)
		}
		opts = append(opts, contracts.WithAPI(api))
	}
	return opts, nil
}

func listPorts(c *cli.Context) error {
	opts, err := clientOptions(c)
	if err != nil {
		return err
	}

	in := midi.NewIn(opts...)
	defer in.ClosePort()
	out := midi.NewOut(opts...)
	defer out.ClosePort()

	fmt.Printf("inputs (%s):\n", in.API().DisplayName())
	for i, name := range in.PortNames() {
		fmt.Printf("  %d: %s\n", i, name)
	}
	fmt.Printf("outputs (%s):\n", out.API().DisplayName())
	for i, name := range out.PortNames() {
		fmt.Printf("  %d: %s\n", i, name)
	}
	return nil
}

func monitorPort(c *cli.Context) error {
	opts, err := clientOptions(c)
	if err != nil {
		return err
	}

	port := 0
	if c.NArg() > 0 {
		port, err = strconv.Atoi(c.Args().First())
		if err != nil {
			return fmt.Errorf("port must be a number: %v", err)
		}
	}

	in := midi.NewIn(opts...)
	defer in.ClosePort()

	in.IgnoreTypes(!c.Bool("sysex"), !c.Bool("clock"), !c.Bool("sense"))
	if err := in.SetCallback(printMessage, nil); err != nil {
		return err
	}
	if err := in.OpenPort(port, "midiprobe monitor"); err != nil {
		return err
	}

	fmt.Printf("monitoring %q, ctrl-c to stop\n", in.PortName(port))
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}

func printMessage(timestamp float64, message []byte, _ any) {
	fmt.Printf("%10.4f  % X\n", timestamp, message)
}

func sendMessage(c *cli.Context) error {
	opts, err := clientOptions(c)
	if err != nil {
		return err
	}
	if c.NArg() < 2 {
		return fmt.Errorf("usage: send port bytes...")
	}

	port, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return fmt.Errorf("port must be a number: %v", err)
	}
	message := make([]byte, 0, c.NArg()-1)
	for _, arg := range c.Args().Tail() {
		b, err := hex.DecodeString(arg)
		if err != nil {
			return fmt.Errorf("byte %q is not hex: %v", arg, err)
		}
		message = append(message, b...)
	}

	out := midi.NewOut(opts...)
	defer out.ClosePort()

	if err := out.OpenPort(port, "midiprobe send"); err != nil {
		return err
	}
	return out.Send(message)
}
