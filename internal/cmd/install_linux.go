//go:build linux

package cmd

import (
	"fmt"
	"log/slog"
	"os"
)

const unitPath = "/etc/systemd/system/tmwheels.service"

const unitTemplate = `[Unit]
Description=Thrustmaster wheel rim to HID gadget bridge
After=local-fs.target

[Service]
ExecStart=%s bridge
Restart=on-failure

[Install]
WantedBy=multi-user.target
`

func install(logger *slog.Logger, exe string) error {
	unit := fmt.Sprintf(unitTemplate, exe)
	if err := os.WriteFile(unitPath, []byte(unit), 0o644); err != nil {
		return err
	}
	logger.Info("service unit installed", "path", unitPath)
	logger.Info("enable it with: systemctl daemon-reload && systemctl enable --now tmwheels")
	return nil
}

func uninstall(logger *slog.Logger) error {
	if err := os.Remove(unitPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn("service unit not installed", "path", unitPath)
			return nil
		}
		return err
	}
	logger.Info("service unit removed", "path", unitPath)
	return nil
}
