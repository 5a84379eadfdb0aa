package repositories

import "github.com/termapps/publisher/internal/config"

// ResolveConflicts makes the AUR source and binary packages declare each other
// as conflicts when both are active, creating their config blocks as needed.
// Names already listed are not added again. Call it once per command, before
// any repository runs.
func ResolveConflicts(active []Kind, cfg *config.AppConfig) {
	if !containsKind(active, KindAur) || !containsKind(active, KindAurBin) {
		return
	}
	aurName := AurName(cfg)
	binName := AurBinName(cfg)

	if cfg.Aur == nil {
		cfg.Aur = &config.AurConfig{}
	}
	if cfg.AurBin == nil {
		cfg.AurBin = &config.AurBinConfig{}
	}
	cfg.Aur.Conflicts = appendMissing(cfg.Aur.Conflicts, binName)
	cfg.AurBin.Conflicts = appendMissing(cfg.AurBin.Conflicts, aurName)
}

func appendMissing(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}
