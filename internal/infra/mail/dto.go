package mail

type PairingEmailData struct {
	Service string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
