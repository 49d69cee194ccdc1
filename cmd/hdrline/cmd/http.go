package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-headerlines/header/field"
	"github.com/zostay/go-headerlines/header/status"
	"github.com/zostay/go-headerlines/internal/compose"
	"github.com/zostay/go-headerlines/internal/profile"
)

type httpOptions struct {
	*options

	profile string
	proto   string
	status  int
	reason  string
	charset string
}

func newHTTPCmd(opts *options) *cobra.Command {
	ho := &httpOptions{options: opts}

	httpCmd := &cobra.Command{
		Use:   "http",
		Short: "Write an HTTP/1.x response header",
		Args:  cobra.NoArgs,
		RunE:  ho.run,
	}

	f := httpCmd.Flags()
	f.StringVar(&ho.profile, "profile", "", "TOML profile to start from")
	f.StringVar(&ho.proto, "proto", status.DefaultProto, "protocol version of the status line")
	f.IntVar(&ho.status, "status", 200, "status code")
	f.StringVar(&ho.reason, "reason", "", "reason phrase (default is the standard one for the code)")
	f.StringVar(&ho.charset, "charset", "", "charset to transcode field bodies into, e.g. ISO-8859-1")

	return httpCmd
}

func (ho *httpOptions) run(cmd *cobra.Command, _ []string) error {
	log := ho.logger(cmd)

	p := profile.Default()
	if ho.profile != "" {
		var err error
		p, err = profile.Load(ho.profile)
		if err != nil {
			return err
		}
		log.Debug().Str("path", ho.profile).Int("fields", len(p.Headers)).Msg("loaded profile")
	}

	f := cmd.Flags()
	if f.Changed("proto") {
		p.Proto = ho.proto
	}
	if f.Changed("status") {
		p.Status = ho.status
	}
	if f.Changed("reason") {
		p.Reason = ho.reason
	}
	if f.Changed("charset") {
		p.Charset = ho.charset
	}
	if ho.date != "" {
		p.Date = ho.date
	}

	enc, err := field.Charset(p.Charset)
	if err != nil {
		return err
	}

	date, err := parseDate(p.Date)
	if err != nil {
		return err
	}

	extra, err := ho.fields()
	if err != nil {
		return err
	}

	fs := make([]*field.Field, 0, len(p.Headers)+len(extra))
	for _, h := range p.Headers {
		fs = append(fs, field.New(h.Name, h.Value))
	}
	fs = append(fs, extra...)

	return ho.emit(cmd, &compose.HTTP{
		Line: status.Line{
			Proto:  p.Proto,
			Code:   p.Status,
			Reason: p.Reason,
		},
		Date:    date,
		Charset: enc,
		Fields:  fs,
		Logger:  &log,
	})
}
