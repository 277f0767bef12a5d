package v1

import (
	"github.com/luscis/smartwifi/cmd/api"
	"github.com/luscis/smartwifi/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Presence struct {
	Cmd
}

func (u Presence) Url(prefix, name string) string {
	if name == "" {
		return prefix + "/api/presence"
	}
	return prefix + "/api/presence/" + name
}

func (u Presence) Tmpl() string {
	return `# total {{ len . }}
{{ps -18 "mac"}} {{ps -20 "name"}} {{ps -16 "ip"}} {{ps -16 "router"}} {{ps -5 "home"}} {{ps -21 "last seen"}}
{{- range . }}
{{ps -18 .Mac}} {{ps -20 .Name}} {{ps -16 .Ip}} {{ps -16 .Host}} {{pb -5 .Home}} {{ps -21 (ut .LastSeen)}}
{{- end }}
`
}

func (u Presence) List(c *cli.Context) error {
	url := u.Url(c.String("url"), "")
	if c.Bool("home") {
		url += "?home=true"
	}
	clt := u.NewHttp(c.String("token"))
	var items []schema.Presence
	if err := clt.GetJSON(url, &items); err != nil {
		return err
	}
	return u.Out(items, c.String("format"), u.Tmpl())
}

func (u Presence) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "presence",
		Aliases: []string{"pr"},
		Usage:   "who is at home",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "Display the presence table",
				Aliases: []string{"ls"},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "home", Usage: "only devices at home"},
				},
				Action: u.List,
			},
		},
	})
}
