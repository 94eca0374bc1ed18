package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-catalog/internal/adapter"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/models"
)

const usage = `usage: catalog <command> [flags]

commands:
  login  -login <login> -senha <senha>
  list   [-categoria <id>]
  create -nome <nome> -qtde <n> -categoria <id>
  update -id <id> [-nome <nome>] [-qtde <n>] [-categoria <id>]
  delete -id <id>
  report pedidos|estoque
`

type App struct {
	catalog adapter.CatalogClient
	out     io.Writer

	logger *logger.Logger
}

func NewApp(catalog adapter.CatalogClient, out io.Writer, logger *logger.Logger) (*App, error) {
	if catalog == nil {
		return nil, errors.New("catalog client is required")
	}
	return &App{catalog: catalog, out: out, logger: logger}, nil
}

// Run executes one command. Protected commands use the token from the
// environment, so "login" prints the token for the caller to keep.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrMissingCommand
	}

	command, args := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", args).Msg("running command")

	switch command {
	case "login":
		return a.login(ctx, args)
	case "list":
		return a.list(ctx, args)
	case "create":
		return a.create(ctx, args)
	case "update":
		return a.update(ctx, args)
	case "delete":
		return a.delete(ctx, args)
	case "report":
		return a.report(ctx, args)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	login := fs.String("login", "", "user login")
	password := fs.String("senha", "", "user password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.catalog.Login(ctx, models.User{Login: *login, Password: *password})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, token.SignedString)
	return err
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list")
	category := fs.String("categoria", "", "category id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rows, err := a.catalog.ListProducts(ctx, *category)
	if err != nil {
		return err
	}
	return a.printJSON(rows)
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := newFlagSet("create")
	pf := registerProductFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	msg, err := a.catalog.CreateProduct(ctx, pf.product(fs))
	if err != nil {
		return err
	}
	return a.printMessage(msg)
}

// update sends only the fields given on the command line; the server clears
// the rest.
func (a *App) update(ctx context.Context, args []string) error {
	fs := newFlagSet("update")
	id := fs.String("id", "", "product id")
	pf := registerProductFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("%w: -id", ErrMissingArgument)
	}

	msg, err := a.catalog.UpdateProduct(ctx, *id, pf.product(fs))
	if err != nil {
		return err
	}
	return a.printMessage(msg)
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := newFlagSet("delete")
	id := fs.String("id", "", "product id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("%w: -id", ErrMissingArgument)
	}

	msg, err := a.catalog.DeleteProduct(ctx, *id)
	if err != nil {
		return err
	}
	return a.printMessage(msg)
}

func (a *App) report(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: pedidos|estoque", ErrMissingArgument)
	}

	var (
		rows []models.Row
		err  error
	)
	switch args[0] {
	case "pedidos":
		rows, err = a.catalog.OrdersReport(ctx)
	case "estoque":
		rows, err = a.catalog.CriticalStockReport(ctx)
	default:
		return fmt.Errorf("%w: report %s", ErrUnknownCommand, args[0])
	}
	if err != nil {
		return err
	}
	return a.printJSON(rows)
}

func (a *App) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func (a *App) printMessage(msg string) error {
	_, err := fmt.Fprintln(a.out, msg)
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

type productFlags struct {
	name     *string
	quantity *int64
	category *int64
}

func registerProductFlags(fs *flag.FlagSet) productFlags {
	return productFlags{
		name:     fs.String("nome", "", "product name"),
		quantity: fs.Int64("qtde", 0, "quantity"),
		category: fs.Int64("categoria", 0, "category id"),
	}
}

// product builds a Product from the flags that were actually set.
func (p productFlags) product(fs *flag.FlagSet) models.Product {
	var product models.Product
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nome":
			product.Name = *p.name
		case "qtde":
			product.Quantity = *p.quantity
		case "categoria":
			product.CategoryID = *p.category
		}
	})
	return product
}
