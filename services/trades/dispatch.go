package trades

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// The chat surface is a static table of command name -> handler, built
// once at startup. Front-ends (the HTTP daemon, the CLI) feed parsed
// invocations through Dispatch and render the Reply.

type Invocation struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	GuildID   string `json:"guild_id"`
	ChannelID string `json:"channel_id"`
	// everything after the command name, untouched
	Args string `json:"args"`
}

type Reply struct {
	Text   string  `json:"text"`
	Offers []Offer `json:"offers,omitempty"`
}

type HandlerFunc func(ctx context.Context, inv Invocation) (Reply, error)

type Command struct {
	Name  string
	Usage string
	Run   HandlerFunc
}

type Dispatcher struct {
	commands map[string]Command
}

func NewDispatcher(svc *Service) *Dispatcher {
	d := &Dispatcher{commands: make(map[string]Command)}
	d.register(Command{
		Name:  "offer",
		Usage: "offer <item text>",
		Run:   offerHandler(svc),
	})
	d.register(Command{
		Name:  "accept",
		Usage: "accept <item> [from <player>]",
		Run:   acceptHandler(svc),
	})
	d.register(Command{
		Name:  "complete",
		Usage: "complete <item>",
		Run:   completeHandler(svc),
	})
	d.register(Command{
		Name:  "last",
		Usage: "last [count]",
		Run:   lastHandler(svc),
	})
	return d
}

func (d *Dispatcher) register(cmd Command) {
	if _, taken := d.commands[cmd.Name]; taken {
		panic(fmt.Sprintf("command %q registered twice", cmd.Name))
	}
	d.commands[cmd.Name] = cmd
}

func (d *Dispatcher) Lookup(name string) (Command, bool) {
	cmd, ok := d.commands[strings.ToLower(name)]
	return cmd, ok
}

func (d *Dispatcher) Dispatch(ctx context.Context, name string, inv Invocation) (Reply, error) {
	cmd, ok := d.Lookup(name)
	if !ok {
		return Reply{}, &ValidationError{Reason: fmt.Sprintf("unknown command %q", name)}
	}
	return cmd.Run(ctx, inv)
}

func offerHandler(svc *Service) HandlerFunc {
	return func(ctx context.Context, inv Invocation) (Reply, error) {
		offer, err := svc.Offer(ctx, OfferRequest{
			OffererID:   inv.UserID,
			OffererName: inv.UserName,
			Item:        inv.Args,
			GuildID:     inv.GuildID,
			ChannelID:   inv.ChannelID,
		})
		if err != nil {
			return Reply{}, err
		}
		return Reply{
			Text:   fmt.Sprintf("offer %s posted: %s", offer.ID, offer.Item),
			Offers: []Offer{offer},
		}, nil
	}
}

func acceptHandler(svc *Service) HandlerFunc {
	return func(ctx context.Context, inv Invocation) (Reply, error) {
		offer, err := svc.Accept(ctx, AcceptRequest{
			AccepterID:   inv.UserID,
			AccepterName: inv.UserName,
			Query:        inv.Args,
		})
		if err != nil {
			return Reply{}, err
		}
		return Reply{
			Text:   fmt.Sprintf("offer %s accepted: %s from %s", offer.ID, offer.Item, offer.OffererName),
			Offers: []Offer{offer},
		}, nil
	}
}

func completeHandler(svc *Service) HandlerFunc {
	return func(ctx context.Context, inv Invocation) (Reply, error) {
		offer, err := svc.Complete(ctx, CompleteRequest{
			CallerID: inv.UserID,
			Query:    inv.Args,
		})
		if err != nil {
			return Reply{}, err
		}
		return Reply{
			Text:   fmt.Sprintf("offer %s completed: %s", offer.ID, offer.Item),
			Offers: []Offer{offer},
		}, nil
	}
}

func lastHandler(svc *Service) HandlerFunc {
	return func(ctx context.Context, inv Invocation) (Reply, error) {
		count := 0
		args := strings.TrimSpace(inv.Args)
		if args != "" {
			parsed, err := strconv.Atoi(args)
			if err != nil || parsed <= 0 {
				return Reply{}, &ValidationError{Reason: "count must be a positive number"}
			}
			count = parsed
		}

		offers, err := svc.Recent(ctx, count)
		if err != nil {
			return Reply{}, err
		}
		return Reply{
			Text:   fmt.Sprintf("%d completed trade(s)", len(offers)),
			Offers: offers,
		}, nil
	}
}
