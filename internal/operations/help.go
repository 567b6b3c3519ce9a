package operations

const helpText = `
help		>	see available commands
	___________________________________
open		>	open <file.txt>
close		>	close currently open file or [<file.txt>]
save		>	save currently open file or save as [<file.txt>]
saveas		>	save currently open file as <file2.txt>
	___________________________________
addevent	>	add event on <date> in <hall> with <name>
freeseats	>	check free seats on <date> for <name>
book		>	book <row> <seat> on <date> for <name> with <note>
unbook		>	unbook <row> <seat> on <date> for <name>
buy		>	buy <row> <seat> on <date> for <name>
bookings	>	see bookings for [<name>] [<date>]
check		>	check <code> validity
qr		>	show the QR code of ticket <code>
report		>	see purchases for events <from> <to> in [<hall>]
mostfamous	>	see best selling events
statistic	>	see worst selling events
	___________________________________
exit		>	exit the program`

// Help prints the command summary.
func Help(s *Session, args []string) error {
	s.println(helpText)
	return nil
}

// Exit says goodbye and stops the shell.
func Exit(s *Session, args []string) error {
	s.println("\nBye...")
	return ErrExit
}
