package commands

var CalculateRequestHash = calculateRequestHash
