package scriptconfigs

import (
	"github.com/reusee/taiscript/cmds"
	"github.com/reusee/taiscript/configs"
	"github.com/reusee/taiscript/scriptvm"
	"github.com/reusee/taiscript/vars"
)

// EntrySection is where a run starts.
type EntrySection scriptvm.Section

var entryFlag = cmds.Var[string]("-entry")

func (Module) EntrySection(
	loader configs.Loader,
) EntrySection {
	fromConfig, err := configs.First[string](loader, "entry_section")
	if err != nil {
		panic(err)
	}
	return EntrySection(vars.FirstNonZero(
		*entryFlag,
		fromConfig,
		string(scriptvm.MainSection),
	))
}
