package v1

import (
	"github.com/luscis/smartwifi/cmd/api"
	"github.com/luscis/smartwifi/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Device struct {
	Cmd
}

func (u Device) Url(prefix, name string) string {
	if name == "" {
		return prefix + "/api/device"
	}
	return prefix + "/api/device/" + name
}

func (u Device) Tmpl() string {
	return `# total {{ len . }}
{{ps -18 "mac"}} {{ps -24 "name"}} {{ps -16 "ip"}} {{ps -16 "router"}}
{{- range . }}
{{ps -18 .Mac}} {{ps -24 .Name}} {{ps -16 .Ip}} {{ps -16 .Host}}
{{- end }}
`
}

func (u Device) List(c *cli.Context) error {
	url := u.Url(c.String("url"), "")
	clt := u.NewHttp(c.String("token"))
	var items []schema.Device
	if err := clt.GetJSON(url, &items); err != nil {
		return err
	}
	return u.Out(items, c.String("format"), u.Tmpl())
}

func (u Device) Name(c *cli.Context) error {
	mac := c.Args().First()
	if mac == "" {
		return cli.Exit("mac address required", 1)
	}
	url := u.Url(c.String("url"), mac)
	clt := u.NewHttp(c.String("token"))
	var item schema.DeviceName
	if err := clt.GetJSON(url, &item); err != nil {
		return err
	}
	return u.Out(item, c.String("format"), "{{ .Name }}\n")
}

func (u Device) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "device",
		Aliases: []string{"dev"},
		Usage:   "wireless clients of all routers",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "Display all devices",
				Aliases: []string{"ls"},
				Action:  u.List,
			},
			{
				Name:      "name",
				Usage:     "Display the name of a device",
				ArgsUsage: "<mac>",
				Action:    u.Name,
			},
		},
	})
}
