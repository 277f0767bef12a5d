package v1

import (
	"github.com/luscis/smartwifi/cmd/api"
	"github.com/luscis/smartwifi/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Scanner struct {
	Cmd
}

func (u Scanner) Url(prefix, name string) string {
	if name == "" {
		return prefix + "/api/scanner"
	}
	return prefix + "/api/scanner/" + name
}

func (u Scanner) Tmpl() string {
	return `# total {{ len . }}
{{ps -16 "router"}} {{ps -6 "ok"}} {{ps -8 "devices"}} {{ps -21 "last refresh"}} {{ps -21 "last success"}} {{ps -8 "error"}}
{{- range . }}
{{ps -16 .Host}} {{pb -6 .Ok}} {{pi -8 .Devices}} {{ps -21 (ut .LastRefresh)}} {{ps -21 (ut .LastSuccess)}} {{ps -8 .LastError}}
{{- end }}
`
}

func (u Scanner) List(c *cli.Context) error {
	url := u.Url(c.String("url"), "")
	clt := u.NewHttp(c.String("token"))
	var items []schema.Scanner
	if err := clt.GetJSON(url, &items); err != nil {
		return err
	}
	return u.Out(items, c.String("format"), u.Tmpl())
}

func (u Scanner) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "scanner",
		Aliases: []string{"sc"},
		Usage:   "router scanners",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "Display all scanners",
				Aliases: []string{"ls"},
				Action:  u.List,
			},
		},
	})
}
