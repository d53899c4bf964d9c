package config

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeTrajectoryYAML reads a single TrajectoryRecord from r.
func DecodeTrajectoryYAML(r io.Reader) (TrajectoryRecord, error) {
	var rec TrajectoryRecord
	err := yaml.NewDecoder(r).Decode(&rec)
	return rec, err
}

// DecodeTrajectoryJSON reads a single TrajectoryRecord from r.
func DecodeTrajectoryJSON(r io.Reader) (TrajectoryRecord, error) {
	var rec TrajectoryRecord
	err := json.NewDecoder(r).Decode(&rec)
	return rec, err
}

// DecodeRobotTrajectoryYAML reads a single RobotTrajectoryRecord from r.
func DecodeRobotTrajectoryYAML(r io.Reader) (RobotTrajectoryRecord, error) {
	var rec RobotTrajectoryRecord
	err := yaml.NewDecoder(r).Decode(&rec)
	return rec, err
}

// DecodeRobotTrajectoryJSON reads a single RobotTrajectoryRecord from r.
func DecodeRobotTrajectoryJSON(r io.Reader) (RobotTrajectoryRecord, error) {
	var rec RobotTrajectoryRecord
	err := json.NewDecoder(r).Decode(&rec)
	return rec, err
}
