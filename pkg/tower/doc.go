// Package tower runs the Seqera Platform CLI (tw) as a child process and
// returns its standard output as text.
//
// A Client is built from an explicit Config. Subcommands are addressed by
// name, either directly through Invoke, through a Subcommand builder
// returned by Client.Command, or through aliases resolved by
// Client.Dispatch:
//
//	client, err := tower.New(tower.Config{Workspace: "1234"})
//	if err != nil {
//		return err
//	}
//	out, err := client.Command("list_pipelines").Run()
//
// Every call blocks until the child exits. A non-zero exit status is not
// an error; use Client.Run to inspect the exit code.
package tower
