// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/escrowd/command/escrow-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "escrow-cli"
	app.Usage = "client for the escrowd marketplace custodian"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "chain, n",
			Value: "testing",
			Usage: " connect to escrowd on `CHAIN` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: " override the configured escrowd `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "Initialise escrow-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*escrowd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "info",
			Usage:  "display escrow-cli configuration",
			Action: runInfo,
		},
		{
			Name:   "escrowd-info",
			Usage:  "display escrowd status",
			Action: runEscrowdInfo,
		},
		{
			Name:   "create",
			Usage:  "create the custodian with the identity as admin",
			Action: runCreate,
		},
		{
			Name:   "custodian",
			Usage:  "display admin, custodian address and collected commission",
			Action: runCustodian,
		},
		{
			Name:   "withdraw",
			Usage:  "admin collects the commission",
			Action: runWithdraw,
		},
		{
			Name:      "mint",
			Usage:     "create a new token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, a",
					Value: "",
					Usage: "*token name `STRING`",
				},
				cli.StringFlag{
					Name:  "unit-name, u",
					Value: "",
					Usage: " token unit name `STRING`",
				},
				cli.StringFlag{
					Name:  "url, l",
					Value: "",
					Usage: " token `URL`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "opt-in",
			Usage:     "allow the identity to receive a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokenFlag,
			},
			Action: runOptIn,
		},
		{
			Name:      "transfer",
			Usage:     "transfer token units to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokenFlag,
				receiverFlag,
				cli.Uint64Flag{
					Name:  "amount, q",
					Value: 1,
					Usage: " units to transfer `COUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "holdings",
			Usage:     "tokens held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
			},
			Action: runHoldings,
		},
		{
			Name:      "balance",
			Usage:     "payment balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
			},
			Action: runBalance,
		},
		{
			Name:      "fund",
			Usage:     "credit the identity (local chain only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				amountFlag,
			},
			Action: runFund,
		},
		{
			Name:      "pay",
			Usage:     "send payment to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				receiverFlag,
				amountFlag,
			},
			Action: runPay,
		},
		{
			Name:      "register",
			Usage:     "pay the custodian to hold a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokenFlag,
			},
			Action: runRegister,
		},
		{
			Name:      "list",
			Usage:     "deposit a token with the custodian for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokenFlag,
				priceFlag,
			},
			Action: runList,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				sellerFlag,
				tokenFlag,
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: " payment `AMOUNT` [listed price]",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "cancel",
			Usage:     "withdraw a listing and recover the token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokenFlag,
			},
			Action: runCancel,
		},
		{
			Name:      "update-price",
			Usage:     "change the price of a listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokenFlag,
				priceFlag,
			},
			Action: runUpdatePrice,
		},
		{
			Name:      "listing",
			Usage:     "display one listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				sellerFlag,
				tokenFlag,
			},
			Action: runListing,
		},
		{
			Name:  "listings",
			Usage: "display the tokens for sale",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " entries to skip `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, k",
					Value: 20,
					Usage: " maximum entries `COUNT`",
				},
			},
			Action: runListings,
		},
		{
			Name:  "version",
			Usage: "display escrow-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "generate", "help", "h":
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		chainName, err := checkChain(c.GlobalString("chain"))
		if nil != err {
			return err
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, chainName+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			save:    false,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}
			m.config = &configuration.Configuration{
				Chain: chainName,
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		m.config, err = configuration.Load(file)
		if nil != err {
			return err
		}
		if connect := c.GlobalString("connect"); "" != connect {
			m.config.Connect = connect
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// flags shared by several commands
var (
	tokenFlag = cli.StringFlag{
		Name:  "token, t",
		Value: "",
		Usage: "*token `ID`",
	}
	ownerFlag = cli.StringFlag{
		Name:  "owner, o",
		Value: "",
		Usage: " identity name or `ACCOUNT` [current identity]",
	}
	receiverFlag = cli.StringFlag{
		Name:  "receiver, r",
		Value: "",
		Usage: "*identity name or `ACCOUNT` to receive",
	}
	sellerFlag = cli.StringFlag{
		Name:  "seller, e",
		Value: "",
		Usage: "*identity name or `ACCOUNT` of the seller",
	}
	amountFlag = cli.StringFlag{
		Name:  "amount, m",
		Value: "",
		Usage: "*payment `AMOUNT` e.g. 1.25",
	}
	priceFlag = cli.StringFlag{
		Name:  "price, r",
		Value: "",
		Usage: "*asking `PRICE` e.g. 1.25",
	}
)
