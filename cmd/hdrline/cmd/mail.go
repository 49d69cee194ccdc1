package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-headerlines/header/field"
	"github.com/zostay/go-headerlines/internal/compose"
)

type mailOptions struct {
	*options

	from    string
	to      string
	cc      string
	subject string
	charset string
}

func newMailCmd(opts *options) *cobra.Command {
	mo := &mailOptions{options: opts}

	mailCmd := &cobra.Command{
		Use:   "mail",
		Short: "Write an RFC 5322 message header",
		Args:  cobra.NoArgs,
		RunE:  mo.run,
	}

	f := mailCmd.Flags()
	f.StringVar(&mo.from, "from", "", "From address list")
	f.StringVar(&mo.to, "to", "", "To address list")
	f.StringVar(&mo.cc, "cc", "", "Cc address list")
	f.StringVar(&mo.subject, "subject", "", "message subject")
	f.StringVar(&mo.charset, "charset", "", "charset to transcode -H field bodies into, e.g. ISO-8859-1")

	return mailCmd
}

func (mo *mailOptions) run(cmd *cobra.Command, _ []string) error {
	log := mo.logger(cmd)

	enc, err := field.Charset(mo.charset)
	if err != nil {
		return err
	}

	date, err := parseDate(mo.date)
	if err != nil {
		return err
	}

	fs, err := mo.fields()
	if err != nil {
		return err
	}

	return mo.emit(cmd, &compose.Mail{
		Date:    date,
		From:    mo.from,
		To:      mo.to,
		Cc:      mo.cc,
		Subject: mo.subject,
		Fields:  fs,
		Charset: enc,
		Logger:  &log,
	})
}
