// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	caller  string
	deposit string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2230"

func main() {

	app := cli.NewApp()
	app.Name = "sbt-cli"
	app.Usage = "soulbound token registry client"
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
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " sbtd RPC `HOST:PORT`",
			EnvVar: "SBT_CONNECT",
		},
		cli.StringFlag{
			Name:   "caller, a",
			Value:  "",
			Usage:  " calling `ACCOUNT` for changes",
			EnvVar: "SBT_CALLER",
		},
		cli.StringFlag{
			Name:  "deposit, d",
			Value: "",
			Usage: " attached deposit in `YOCTO`NEAR",
		},
	}

	mintFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "owner, o",
			Usage: "+owner `ACCOUNT`",
		},
		cli.StringSliceFlag{
			Name:  "class, k",
			Usage: " token `CLASS`, repeat for more",
		},
		cli.Uint64Flag{
			Name:  "expires-at, e",
			Usage: " expiry in unix `MILLISECONDS`",
		},
		cli.StringFlag{
			Name:  "reference, r",
			Usage: " off chain `URL`",
		},
		cli.StringFlag{
			Name:  "reference-hash, x",
			Usage: " 32 byte reference `HEX`",
		},
		cli.StringFlag{
			Name:  "json, j",
			Usage: "+token specs from JSON `FILE`",
		},
	}
	accountFlag := cli.StringFlag{
		Name:  "account, a",
		Usage: "*`ACCOUNT`",
	}
	accountsFlag := cli.StringSliceFlag{
		Name:  "account, a",
		Usage: "*`ACCOUNT`, repeat for more",
	}
	tokensFlag := cli.StringSliceFlag{
		Name:  "token, t",
		Usage: "*token `ID`, repeat for more",
	}
	limitFlag := cli.IntFlag{
		Name:  "limit, l",
		Value: 0,
		Usage: " batch size `COUNT`, 0 for the default",
	}
	memoFlag := cli.StringFlag{
		Name:  "memo, m",
		Usage: " event `TEXT`",
	}

	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display sbtd status",
			Action: runInfo,
		},
		{
			Name:  "events",
			Usage: "list committed events",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Usage: " first `SEQUENCE`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of events `COUNT`",
				},
			},
			Action: runEvents,
		},

		// tokens
		{
			Name:      "mint",
			Usage:     "mint tokens as the calling issuer",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     append([]cli.Flag{memoFlag}, mintFlags...),
			Action:    runMint,
		},
		{
			Name:      "renew",
			Usage:     "set the expiry of issued tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokensFlag,
				cli.Uint64Flag{
					Name:  "expires-at, e",
					Usage: "*expiry in unix `MILLISECONDS`",
				},
			},
			Action: runRenew,
		},
		{
			Name:      "revoke",
			Usage:     "revoke or burn issued tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokensFlag,
				cli.BoolFlag{
					Name:  "burn, b",
					Usage: " remove instead of expire",
				},
			},
			Action: runRevoke,
		},
		{
			Name:      "soul-transfer",
			Usage:     "move every token of the caller, repeat until completed",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Usage: "*recipient `ACCOUNT`",
				},
				limitFlag,
				memoFlag,
			},
			Action: runSoulTransfer,
		},
		{
			Name:      "recover",
			Usage:     "move the calling issuer's tokens between accounts",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Usage: "*lost `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Usage: "*new `ACCOUNT`",
				},
				limitFlag,
				memoFlag,
			},
			Action: runRecover,
		},
		{
			Name:   "burn-all",
			Usage:  "burn a batch of the caller's tokens",
			Flags:  []cli.Flag{limitFlag},
			Action: runBurnAll,
		},
		{
			Name:      "token",
			Usage:     "display one token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "issuer, i",
					Usage: "*issuer `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Usage: "*token `ID`",
				},
			},
			Action: runToken,
		},
		{
			Name:      "tokens",
			Usage:     "list an issuer's tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "issuer, i",
					Usage: "*issuer `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "from, f",
					Usage: " first token `ID`",
				},
				cli.UintFlag{
					Name:  "limit, l",
					Usage: " maximum `COUNT`",
				},
				cli.BoolFlag{
					Name:  "with-expired, e",
					Usage: " include expired tokens",
				},
			},
			Action: runTokens,
		},
		{
			Name:      "owned",
			Usage:     "list an account's tokens by issuer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag,
				cli.StringFlag{
					Name:  "issuer, i",
					Usage: " only this issuer `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "from-class, f",
					Usage: " first `CLASS`, needs issuer",
				},
				cli.UintFlag{
					Name:  "limit, l",
					Usage: " maximum `COUNT`",
				},
				cli.BoolFlag{
					Name:  "with-expired, e",
					Usage: " include expired tokens",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "supply",
			Usage:     "count tokens of an issuer, a class or an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "issuer, i",
					Usage: "*issuer `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "class, k",
					Usage: " token `CLASS`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Usage: " owner `ACCOUNT`",
				},
			},
			Action: runSupply,
		},
		{
			Name:   "issuers",
			Usage:  "list registered issuers",
			Action: runIssuers,
		},

		// human
		{
			Name:      "is-human",
			Usage:     "display the humanity proof of an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag},
			Action:    runIsHuman,
		},
		{
			Name:      "human-call",
			Usage:     "build the call made on behalf of a human caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract, t",
					Usage: "*target `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "function, f",
					Usage: "*target `METHOD`",
				},
				cli.StringFlag{
					Name:  "payload, p",
					Usage: " call `JSON`",
				},
				cli.Uint64Flag{
					Name:  "lock, l",
					Usage: " soul transfer lock `MILLISECONDS`",
				},
				cli.BoolFlag{
					Name:  "with-proof, w",
					Usage: " include the proof in the call",
				},
			},
			Action: runHumanCall,
		},
		{
			Name:      "banned",
			Usage:     "check if an account is banned",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag},
			Action:    runBanned,
		},
		{
			Name:      "flagged",
			Usage:     "display the flag of an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag},
			Action:    runFlagged,
		},
		{
			Name:   "class-set",
			Usage:  "display the classes that prove humanity",
			Action: runClassSet,
		},

		// admin
		{
			Name:      "add-issuer",
			Usage:     "register an issuer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "issuer, i",
					Usage: "*issuer `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "testing, t",
					Usage: " use the test network call",
				},
			},
			Action: runAddIssuer,
		},
		{
			Name:      "flag",
			Usage:     "flag accounts as blacklisted or verified",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "flag, f",
					Usage: "*`FLAG` [Blacklisted|Verified]",
				},
				accountsFlag,
			},
			Action: runFlag,
		},
		{
			Name:      "unflag",
			Usage:     "remove account flags",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountsFlag},
			Action:    accountsAction("Unflag"),
		},
		{
			Name:      "add-flagger",
			Usage:     "authorize accounts to flag",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountsFlag},
			Action:    accountsAction("AddFlagger"),
		},
		{
			Name:      "remove-flagger",
			Usage:     "withdraw flagging rights",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountsFlag},
			Action:    accountsAction("RemoveFlagger"),
		},
		{
			Name:      "change-admin",
			Usage:     "hand over the authority",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag},
			Action:    runChangeAdmin,
		},
		{
			Name:      "set-class-set",
			Usage:     "replace the classes that prove humanity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "issuer, i",
					Usage: "*issuer `ACCOUNT`",
				},
				cli.StringSliceFlag{
					Name:  "class, k",
					Usage: "*token `CLASS`, repeat for more",
				},
			},
			Action: runSetClassSet,
		},
		{
			Name:   "admin-info",
			Usage:  "display the authority and flaggers",
			Action: runAdminInfo,
		},

		// test networks
		{
			Name:      "add-minter",
			Usage:     "allow an account to use testing-mint",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag},
			Action:    runAddMinter,
		},
		{
			Name:      "testing-mint",
			Usage:     "mint under any issuer",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "issuer, i",
					Usage: "*issuer `ACCOUNT`",
				},
			}, mintFlags...),
			Action: runTestingMint,
		},
		{
			Name:      "testing-renew",
			Usage:     "renew under any issuer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "issuer, i",
					Usage: "*issuer `ACCOUNT`",
				},
				tokensFlag,
				cli.Uint64Flag{
					Name:  "expires-at, e",
					Usage: "*expiry in unix `MILLISECONDS`",
				},
			},
			Action: runTestingRenew,
		},
		{
			Name:  "version",
			Usage: "display sbt-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			caller:  c.GlobalString("caller"),
			deposit: c.GlobalString("deposit"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
