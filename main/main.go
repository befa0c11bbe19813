package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/asdlei99/spot-micro-kinematics/body"
	"github.com/asdlei99/spot-micro-kinematics/config"
	"github.com/asdlei99/spot-micro-kinematics/utils"
)

var (
	configPath = flag.String("config", "", "path to a robot description (yaml)")
	pitch      = flag.Float64("pitch", 0, "body pitch in degrees")
	debug      = flag.Bool("debug", false, "log debug info")
)

func main() {
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	robot := config.Default()
	if *configPath != "" {
		var err error
		robot, err = config.Load(*configPath)
		if err != nil {
			logrus.WithError(err).Error("loading robot config")
			os.Exit(1)
		}
	}

	feet := robot.NeutralFeet()
	logrus.WithFields(logrus.Fields{
		"body":  fmt.Sprintf("%gx%g", robot.Length, robot.Width),
		"pitch": fmt.Sprintf("%g deg", *pitch),
	}).Debug("solving stance")

	angles, err := body.PitchStance(utils.Rad(*pitch), feet, robot.Footprint(), robot.Links())
	if err != nil {
		logrus.WithError(err).Error("stance not solvable")
		os.Exit(1)
	}

	for id := body.RightBack; id <= body.LeftBack; id++ {
		a := angles[id]
		logrus.WithFields(logrus.Fields{
			"leg":   id.String(),
			"hip":   fmt.Sprintf("%+07.2f", utils.Deg(a.Hip)),
			"upper": fmt.Sprintf("%+07.2f", utils.Deg(a.Upper)),
			"lower": fmt.Sprintf("%+07.2f", utils.Deg(a.Lower)),
		}).Info("joint angles (deg)")
	}
}
