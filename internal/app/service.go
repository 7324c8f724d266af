package app

import (
	"mclauncher/internal/adapters"
	"mclauncher/internal/ports"
)

type Service struct {
	Descriptors ports.DescriptorPort
	Filesystem  ports.FilesystemPort
	Launcher    ports.LauncherPort
	Profiles    ports.ProfilePort
	Versions    ports.VersionListPort
}

func NewService() Service {
	return Service{
		Descriptors: adapters.NewDescriptorFileAdapter(),
		Filesystem:  adapters.NewOSFilesystemAdapter(),
		Launcher:    adapters.NewExecLauncherAdapter(),
		Profiles:    adapters.NewProfileFileAdapter(),
		Versions:    adapters.NewVersionDirAdapter(),
	}
}
