package v1

import (
	"github.com/luscis/smartwifi/cmd/api"
	"github.com/luscis/smartwifi/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Scan struct {
	Cmd
}

func (u Scan) Url(prefix, name string) string {
	return prefix + "/api/scan"
}

func (u Scan) Tmpl() string {
	return `Scanners: {{ .Scanners }}
Devices : {{ .Devices }}
Home    : {{ .Home }}
`
}

func (u Scan) Add(c *cli.Context) error {
	url := u.Url(c.String("url"), "")
	clt := u.NewHttp(c.String("token"))
	var item schema.Scan
	if err := clt.PostJSON(url, nil, &item); err != nil {
		return err
	}
	return u.Out(item, c.String("format"), u.Tmpl())
}

func (u Scan) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:   "scan",
		Usage:  "run one scan now",
		Action: u.Add,
	})
}
